// Package rng provides the deterministic random stream shared by world
// generation and the hazard systems. A stream is a pure function of its seed
// text and the number of draws taken from it.
package rng

import (
	"fmt"
	"math"
)

// RNG is a seeded pseudo-random stream with a 32-bit state.
// Identical seed text always yields an identical sequence.
type RNG struct {
	seedText string
	state    uint32
}

// New creates a stream seeded from the FNV-1a hash of seedText.
func New(seedText string) *RNG {
	return &RNG{
		seedText: seedText,
		state:    hashSeed(seedText),
	}
}

// hashSeed folds the seed text into a 32-bit state (FNV-1a over UTF-16 code units).
func hashSeed(s string) uint32 {
	h := uint32(2166136261)
	for _, r := range s {
		if r > 0xFFFF {
			// Surrogate pair, hashed the same way a UTF-16 string would be.
			r -= 0x10000
			h ^= uint32(0xD800 + (r >> 10))
			h *= 16777619
			h ^= uint32(0xDC00 + (r & 0x3FF))
			h *= 16777619
			continue
		}
		h ^= uint32(r)
		h *= 16777619
	}
	return h
}

// SeedText returns the text the stream was created from.
func (r *RNG) SeedText() string {
	return r.seedText
}

// Next returns a float in [0, 1).
func (r *RNG) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a float in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + (max-min)*r.Next()
}

// Int returns an integer in [min, maxInclusive].
func (r *RNG) Int(min, maxInclusive int) int {
	return int(math.Floor(r.Range(float64(min), float64(maxInclusive+1))))
}

// Bool returns true with the given probability.
// Chances at or below 0 never draw; at or above 1 never draw either.
func (r *RNG) Bool(chance float64) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 1 {
		return true
	}
	return r.Next() < chance
}

// Sign returns -1 or 1 with equal probability.
func (r *RNG) Sign() float64 {
	if r.Next() < 0.5 {
		return -1
	}
	return 1
}

// Fork returns an independent stream seeded from "<seed>:<suffix>".
// The child does not depend on how many values the parent has produced.
func (r *RNG) Fork(suffix string) *RNG {
	return New(fmt.Sprintf("%s:%s", r.seedText, suffix))
}

// Pick returns a uniformly chosen element of items.
// Panics on an empty slice, like indexing would.
func Pick[T any](r *RNG, items []T) T {
	return items[r.Int(0, len(items)-1)]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](r *RNG, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Int(0, i)
		items[i], items[j] = items[j], items[i]
	}
}
