package world

import "github.com/vovakirdan/zxrescue/internal/core"

// Overview glyphs, lowest land first.
var reliefGlyphs = []rune{'.', ':', '+', '^'}

// DrawOverview draws the whole archipelago into scr, north up, scaled to
// fill it. Pads, crates, and refugees are drawn over the terrain.
func (w *World) DrawOverview(scr *core.Screen) {
	scr.Clear()
	cols, rows := scr.Width(), scr.Height()
	if cols == 0 || rows == 0 {
		return
	}

	peak := w.SeaLevel
	for i, h := range w.H {
		if w.Mask[i] == 1 {
			peak = max(peak, h)
		}
	}
	span := max(peak-w.SeaLevel, 1e-9)

	for sy := range rows {
		for sx := range cols {
			x, z := w.overviewToWorld(sx, sy, cols, rows)
			cell := w.CellIndex(x, z)
			if w.Mask[cell] == 0 {
				scr.SetColor(sx, sy, '~', core.ColorDeepSea)
				continue
			}
			t := (w.H[cell] - w.SeaLevel) / span
			i := min(int(t*float64(len(reliefGlyphs))), len(reliefGlyphs)-1)
			scr.SetColor(sx, sy, reliefGlyphs[max(i, 0)], core.ColorGrass)
		}
	}

	for i := range w.Refugees {
		r := &w.Refugees[i]
		w.overviewPut(scr, r.X, r.Z, 'R', core.ColorRefugee)
	}
	for i := range w.Crates {
		c := &w.Crates[i]
		w.overviewPut(scr, c.X, c.Z, 'C', core.ColorCrate)
	}
	for i := range w.Helipads {
		p := &w.Helipads[i]
		if p.IsBase() {
			w.overviewPut(scr, p.X, p.Z, 'B', core.ColorBasePad)
		} else {
			w.overviewPut(scr, p.X, p.Z, 'H', core.ColorPad)
		}
	}
}

func (w *World) overviewToWorld(sx, sy, cols, rows int) (float64, float64) {
	half := w.Size / 2
	x := -half + (float64(sx)+0.5)*w.Size/float64(cols)
	z := -half + (float64(sy)+0.5)*w.Size/float64(rows)
	return x, z
}

func (w *World) overviewPut(scr *core.Screen, x, z float64, r rune, c core.Color) {
	half := w.Size / 2
	sx := int((x + half) / w.Size * float64(scr.Width()))
	sy := int((z + half) / w.Size * float64(scr.Height()))
	scr.SetColor(core.Clamp(sx, 0, scr.Width()-1), core.Clamp(sy, 0, scr.Height()-1), r, c)
}
