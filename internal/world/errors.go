package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAttemptsExhausted is matched by every GenerationError.
var ErrAttemptsExhausted = errors.New("world: generation attempts exhausted")

// GenerationError reports that no derived seed within the attempt budget
// produced an acceptable world. It is not retryable for the same inputs.
type GenerationError struct {
	Seed     string
	Round    int
	Attempts int
	Reasons  []string // One rejection reason per attempt
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("world: no acceptable archipelago for seed %q round %d after %d attempts: %s",
		e.Seed, e.Round, e.Attempts, strings.Join(e.Reasons, "; "))
}

// Is makes errors.Is(err, ErrAttemptsExhausted) true for any GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrAttemptsExhausted
}

// rejection is an acceptance failure of one attempt.
type rejection struct {
	reason string
}

func (r *rejection) Error() string {
	return r.reason
}

func reject(format string, args ...any) error {
	return &rejection{reason: fmt.Sprintf(format, args...)}
}
