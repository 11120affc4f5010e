package world

import (
	"testing"

	"github.com/vovakirdan/zxrescue/internal/rng"
)

func TestRegionsNoRowWrap(t *testing.T) {
	// 4x3 grid; cells 3 and 4 are adjacent in memory but on different rows.
	mask := []uint8{
		0, 0, 0, 1,
		1, 0, 0, 0,
		1, 0, 1, 1,
	}
	regs := regions(mask, 4)
	if len(regs) != 3 {
		t.Fatalf("regions() found %d regions, expected 3: %v", len(regs), regs)
	}
	if len(regs[0]) != 2 || len(regs[1]) != 2 || len(regs[2]) != 1 {
		t.Errorf("region sizes = %d,%d,%d, expected 2,2,1", len(regs[0]), len(regs[1]), len(regs[2]))
	}
}

func TestRegionsDiagonalNotConnected(t *testing.T) {
	mask := []uint8{
		1, 0,
		0, 1,
	}
	if got := len(regions(mask, 2)); got != 2 {
		t.Errorf("regions() = %d, expected diagonal cells to stay separate", got)
	}
}

func TestSinkSea(t *testing.T) {
	h := []float64{0.5, 0.5, 0.1, 0.3}
	regs := [][]int{{0, 1}}
	mask, islandOf := sinkSea(h, regs, 0.17)

	if mask[3] != 0 || h[3] != 0.17 {
		t.Errorf("dropped land cell kept mask=%d h=%v", mask[3], h[3])
	}
	if h[2] != 0.1 {
		t.Errorf("sea cell changed to %v", h[2])
	}
	if islandOf[0] != 0 || islandOf[2] != -1 {
		t.Errorf("islandOf = %v", islandOf)
	}
}

func TestCollapseVowels(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"baaat", "bat"},
		{"sheeoo", "sheo"},
		{"brr", "brr"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := collapseVowels(tt.in); got != tt.expected {
			t.Errorf("collapseVowels(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestNamerUnique(t *testing.T) {
	nm := newNamer(rng.New("names"))
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		name := nm.next(i)
		if seen[name] {
			t.Fatalf("next(%d) repeated %q", i, name)
		}
		seen[name] = true
	}
}

func TestNameWordShape(t *testing.T) {
	r := rng.New("shape")
	for i := 0; i < 200; i++ {
		w := nameWord(r)
		if len(w) == 0 || len(w) > maxNameLen {
			t.Fatalf("nameWord() = %q, bad length", w)
		}
		if w[0] < 'A' || w[0] > 'Z' {
			t.Fatalf("nameWord() = %q, expected capitalized", w)
		}
	}
}
