package world

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/rng"
)

// edgeProfile selects how a blob falls off toward its rim.
type edgeProfile int

const (
	profileSmooth edgeProfile = iota
	profileRidge
	profileStepped
	profileBlocky
)

// shapeReach is the normalized elliptic distance a blob stops contributing at.
const shapeReach = 1.65

// blob is an elliptical height contribution. Units are grid cells.
type blob struct {
	cx, cy   float64
	rx, ry   float64
	sep      float64 // Minimum clearance to other main blobs
	amp      float64
	rot      float64
	ridgeDir float64
	phaseA   float64
	phaseB   float64
	profile  edgeProfile
}

type blobTier struct {
	rx, ry, sep, amp [2]float64
	lobes            [2]int
}

var (
	tierBig    = blobTier{rx: [2]float64{12, 21}, ry: [2]float64{10, 18}, sep: [2]float64{20, 29}, amp: [2]float64{1.08, 1.45}, lobes: [2]int{2, 4}}
	tierMedium = blobTier{rx: [2]float64{8, 14}, ry: [2]float64{7, 12}, sep: [2]float64{14, 21}, amp: [2]float64{0.95, 1.3}, lobes: [2]int{1, 3}}
	tierSmall  = blobTier{rx: [2]float64{5, 9}, ry: [2]float64{4.5, 8}, sep: [2]float64{10, 16}, amp: [2]float64{0.82, 1.15}, lobes: [2]int{0, 2}}
)

func pickTier(r *rng.RNG) blobTier {
	switch t := r.Next(); {
	case t < 0.34:
		return tierBig
	case t < 0.72:
		return tierMedium
	default:
		return tierSmall
	}
}

// placeBlobs scatters main island blobs with rejection sampling on center
// separation, each followed by a few satellite lobes.
func placeBlobs(r *rng.RNG, cfg config.WorldConfig) []blob {
	n := float64(cfg.Resolution)
	target := cfg.IslandTarget + r.Int(-cfg.IslandJitter, cfg.IslandJitter)

	var mains, shapes []blob
	for attempt := 0; attempt < cfg.BlobAttempts && len(mains) < target; attempt++ {
		cx := r.Range(0.07, 0.93) * n
		cy := r.Range(0.07, 0.93) * n
		tier := pickTier(r)
		rx := r.Range(tier.rx[0], tier.rx[1])
		ry := r.Range(tier.ry[0], tier.ry[1])
		sep := r.Range(tier.sep[0], tier.sep[1])

		if !separated(mains, cx, cy, sep) {
			continue
		}

		main := blob{
			cx: cx, cy: cy, rx: rx, ry: ry, sep: sep,
			amp:      r.Range(tier.amp[0], tier.amp[1]),
			rot:      r.Range(0, math.Pi),
			ridgeDir: r.Range(0, math.Pi),
			phaseA:   r.Range(0, 2*math.Pi),
			phaseB:   r.Range(0, 2*math.Pi),
			profile:  edgeProfile(r.Int(0, 3)),
		}
		mains = append(mains, main)
		shapes = append(shapes, main)

		lobes := r.Int(tier.lobes[0], tier.lobes[1])
		reach := math.Max(rx, ry)
		for l := 0; l < lobes; l++ {
			angle := r.Range(0, 2*math.Pi)
			dist := r.Range(reach*0.35, reach*0.92)
			shapes = append(shapes, blob{
				cx:       cx + math.Cos(angle)*dist,
				cy:       cy + math.Sin(angle)*dist,
				rx:       r.Range(rx*0.35, rx*0.78),
				ry:       r.Range(ry*0.35, ry*0.78),
				amp:      main.amp * r.Range(0.45, 0.72),
				rot:      r.Range(0, math.Pi),
				ridgeDir: r.Range(0, math.Pi),
				phaseA:   main.phaseA + r.Range(-1.2, 1.2),
				phaseB:   main.phaseB + r.Range(-1.2, 1.2),
				profile:  edgeProfile(r.Int(0, 3)),
			})
		}
	}
	return shapes
}

func separated(mains []blob, cx, cy, sep float64) bool {
	for _, m := range mains {
		dx, dy := cx-m.cx, cy-m.cy
		minSep := sep + m.sep
		if dx*dx+dy*dy < minSep*minSep {
			return false
		}
	}
	return true
}

// stamp adds the blob's contribution to the height grid.
func (s blob) stamp(h []float64, n int) {
	maxR := math.Max(s.rx, s.ry) * 1.95
	x0 := max(0, int(math.Floor(s.cx-maxR)))
	x1 := min(n-1, int(math.Ceil(s.cx+maxR)))
	y0 := max(0, int(math.Floor(s.cy-maxR)))
	y1 := min(n-1, int(math.Ceil(s.cy+maxR)))

	cs, sn := math.Cos(s.rot), math.Sin(s.rot)
	ridgeCos, ridgeSin := math.Cos(s.ridgeDir), math.Sin(s.ridgeDir)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - s.cx
			dy := float64(y) - s.cy
			lx := dx*cs - dy*sn
			ly := dx*sn + dy*cs
			d := math.Sqrt(lx*lx/(s.rx*s.rx) + ly*ly/(s.ry*s.ry))
			if d > shapeReach {
				continue
			}
			edge := math.Max(0, 1-d/shapeReach)
			warp := 1 + math.Sin(lx*0.27+ly*0.13+s.phaseA)*0.16 + math.Cos(ly*0.31-lx*0.11+s.phaseB)*0.13

			var contrib float64
			switch s.profile {
			case profileSmooth:
				contrib = s.amp * math.Pow(edge, 0.5)
			case profileRidge:
				axis := (lx*ridgeCos + ly*ridgeSin) / (s.rx * 1.05)
				ridge := math.Max(0, 1-math.Abs(axis))
				contrib = s.amp * math.Pow(edge, 0.88) * (0.5 + ridge*0.7)
			case profileStepped:
				contrib = s.amp * math.Floor(math.Pow(edge, 0.7)*6) / 6
			default:
				block := math.Max(0, 1-math.Max(math.Abs(lx)/(s.rx*1.08), math.Abs(ly)/(s.ry*1.08)))
				contrib = s.amp * math.Pow(block, 0.85)
			}
			h[y*n+x] += contrib * warp
		}
	}
}

// synthesizeHeights builds the raw heightfield for one attempt.
func synthesizeHeights(r *rng.RNG, cfg config.WorldConfig) []float64 {
	n := cfg.Resolution
	h := make([]float64, n*n)
	for i := range h {
		h[i] = r.Range(-0.44, -0.3)
	}

	for _, s := range placeBlobs(r, cfg) {
		s.stamp(h, n)
	}

	phaseA := r.Range(0, 2*math.Pi)
	phaseB := r.Range(0, 2*math.Pi)
	noise := opensimplex.New(int64(r.Int(0, math.MaxInt32)))
	addGlobalNoise(h, n, r, noise, cfg, phaseA, phaseB)
	terrace(h, n, cfg.SeaLevel, phaseA, phaseB)
	return h
}

// addGlobalNoise overlays low-frequency waves and simplex noise on every cell.
func addGlobalNoise(h []float64, n int, r *rng.RNG, noise opensimplex.Noise, cfg config.WorldConfig, phaseA, phaseB float64) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fx, fy := float64(x), float64(y)
			wave := math.Sin(fx*0.05+phaseA)*math.Cos(fy*0.055+phaseB)*0.07 +
				math.Sin((fx+fy)*0.03+phaseB)*0.04
			simplex := noise.Eval2(fx*cfg.NoiseScale, fy*cfg.NoiseScale) * cfg.NoiseAmplitude
			h[y*n+x] += wave + simplex + r.Range(-0.02, 0.02)
		}
	}
}

// terrace flattens land above sea level into plateaus and readable steps.
func terrace(h []float64, n int, seaLevel, phaseA, phaseB float64) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := y*n + x
			if h[i] <= seaLevel {
				continue
			}
			fx, fy := float64(x), float64(y)
			local := h[i] - seaLevel
			plateau := 0.34 + 0.1*math.Sin(fx*0.045+phaseA)*math.Cos(fy*0.042+phaseB)
			local = math.Min(local, plateau+local*0.25)
			step := 0.045 + 0.015*(0.5+0.5*math.Sin((fx+fy)*0.035+phaseA))
			local = math.Max(0, math.Floor(local/step)*step)
			local -= math.Max(0, math.Sin(fx*0.09+phaseB)*math.Cos(fy*0.08+phaseA)) * 0.012
			h[i] = seaLevel + math.Max(0, local)
		}
	}
}
