package world

import (
	"math"
	"sort"

	"github.com/vovakirdan/zxrescue/internal/core"
)

// landMask thresholds the heightfield.
func landMask(h []float64, threshold float64) []uint8 {
	mask := make([]uint8, len(h))
	for i, v := range h {
		if v > threshold {
			mask[i] = 1
		}
	}
	return mask
}

// regions decomposes the mask into 4-connected regions, largest first.
// Ties keep discovery order so the result is deterministic.
func regions(mask []uint8, n int) [][]int {
	visited := make([]bool, len(mask))
	var out [][]int
	stack := make([]int, 0, 256)

	for i := range mask {
		if mask[i] == 0 || visited[i] {
			continue
		}
		visited[i] = true
		stack = append(stack[:0], i)
		var cells []int
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cells = append(cells, c)

			x := c % n
			for _, nb := range [4]int{c + 1, c - 1, c + n, c - n} {
				if nb < 0 || nb >= len(mask) || visited[nb] || mask[nb] == 0 {
					continue
				}
				// Horizontal neighbors must stay on the same row.
				if (nb == c+1 && x == n-1) || (nb == c-1 && x == 0) {
					continue
				}
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
		out = append(out, cells)
	}

	sort.SliceStable(out, func(a, b int) bool { return len(out[a]) > len(out[b]) })
	return out
}

// dropSmall keeps regions with at least minCells cells.
func dropSmall(regs [][]int, minCells int) [][]int {
	kept := regs[:0:0]
	for _, r := range regs {
		if len(r) >= minCells {
			kept = append(kept, r)
		}
	}
	return kept
}

// sinkSea rebuilds the mask from the surviving regions and lowers every
// other cell to sea level, so height queries agree with the mask.
func sinkSea(h []float64, regs [][]int, seaLevel float64) (mask []uint8, islandOf []int) {
	mask = make([]uint8, len(h))
	islandOf = make([]int, len(h))
	for i := range islandOf {
		islandOf[i] = -1
	}
	for idx, r := range regs {
		for _, c := range r {
			mask[c] = 1
			islandOf[c] = idx
		}
	}
	for i := range h {
		if mask[i] == 0 && h[i] > seaLevel {
			h[i] = seaLevel
		}
	}
	return mask, islandOf
}

// regionCenter returns the world position of the cell nearest the centroid.
func regionCenter(cells []int, n int, size float64) core.Vec2 {
	var sx, sy float64
	for _, c := range cells {
		sx += float64(c % n)
		sy += float64(c / n)
	}
	cx := core.Clamp(int(math.Round(sx/float64(len(cells)))), 0, n-1)
	cy := core.Clamp(int(math.Round(sy/float64(len(cells)))), 0, n-1)
	return cellToWorld(cy*n+cx, n, size)
}
