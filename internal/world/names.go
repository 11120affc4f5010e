package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/zxrescue/internal/rng"
)

const (
	maxNameLen  = 9
	nameRetries = 18
	twoWordOdds = 0.42
	nameSyllMin = 2
	nameSyllMax = 3
)

var (
	nameOnsets = []string{"", "b", "c", "d", "f", "g", "h", "k", "l", "m", "n", "p", "r", "s", "t", "v", "w", "z", "br", "cr", "dr", "gr", "pr", "st", "tr", "cl", "gl", "th", "sh"}
	nameVowels = []string{"a", "e", "i", "o", "u", "ai", "ea", "io", "oa", "ou"}
	nameCodas  = []string{"", "", "", "", "n", "r", "l", "s", "t", "m", "k"}
)

// nameWord builds one capitalized word of two or three syllables.
func nameWord(r *rng.RNG) string {
	syllables := r.Int(nameSyllMin, nameSyllMax)
	var sb strings.Builder
	for i := 0; i < syllables; i++ {
		sb.WriteString(rng.Pick(r, nameOnsets))
		sb.WriteString(rng.Pick(r, nameVowels))
		sb.WriteString(rng.Pick(r, nameCodas))
	}

	word := collapseVowels(sb.String())
	if len(word) > maxNameLen {
		word = word[:maxNameLen]
	}
	if word == "" {
		word = fmt.Sprintf("isle%d", r.Int(10, 999))
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// collapseVowels squeezes runs of the same vowel ("aa" -> "a").
func collapseVowels(s string) string {
	var sb strings.Builder
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == prev && strings.IndexByte("aeiou", c) >= 0 {
			continue
		}
		sb.WriteByte(c)
		prev = c
	}
	return sb.String()
}

// namer hands out island names that are unique within one world.
type namer struct {
	r    *rng.RNG
	used mapset.Set[string]
}

func newNamer(r *rng.RNG) *namer {
	return &namer{r: r, used: mapset.New[string]()}
}

// next returns a fresh name for the island at index, falling back to a
// numbered name after a bounded number of collisions.
func (nm *namer) next(index int) string {
	var name string
	for tries := 0; tries < nameRetries; tries++ {
		name = nameWord(nm.r)
		if nm.r.Next() < twoWordOdds {
			name = name + " " + nameWord(nm.r)
		}
		if !nm.used.Has(name) {
			nm.used.Put(name)
			return name
		}
	}
	name = fmt.Sprintf("%s-%d", nameWord(nm.r), index+1)
	nm.used.Put(name)
	return name
}
