package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/sim"
	"github.com/vovakirdan/zxrescue/internal/world"
)

// Map view layout.
const (
	hudRows      = 2
	viewScale    = 1.0 // World units per column; rows cover twice as much
	shallowBand  = 0.03
	miniW, miniH = 24, 9
	bigW, bigH   = 48, 18
	barWidth     = 7
)

var heliGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// ViewOptions carries host-side extras for one frame.
type ViewOptions struct {
	Flash string  // Short message under the map, e.g. the last event
	Alpha float64 // Fraction of a step since the last tick, for animation only
}

// mapView projects world coordinates around the heli onto the screen.
type mapView struct {
	area   core.Rect
	cx, cy int
	hx, hz float64
	flip   float64 // 1 north-up, -1 south-up
}

func newMapView(area core.Rect, h *sim.Heli, north bool) mapView {
	v := mapView{
		area: area,
		cx:   area.X + area.W/2,
		cy:   area.Y + area.H/2,
		hx:   h.X,
		hz:   h.Z,
		flip: 1,
	}
	if !north {
		v.flip = -1
	}
	return v
}

func (v mapView) toWorld(sx, sy int) (float64, float64) {
	dx := float64(sx-v.cx) * viewScale * v.flip
	dz := float64(sy-v.cy) * viewScale * 2 * v.flip
	return v.hx + dx, v.hz + dz
}

func (v mapView) toScreen(x, z float64) (int, int, bool) {
	sx := v.cx + int(math.Round((x-v.hx)*v.flip/viewScale))
	sy := v.cy + int(math.Round((z-v.hz)*v.flip/(viewScale*2)))
	return sx, sy, v.area.Contains(sx, sy)
}

func (v mapView) put(scr *core.Screen, x, z float64, r rune, c core.Color) {
	if sx, sy, ok := v.toScreen(x, z); ok {
		scr.SetColor(sx, sy, r, c)
	}
}

// disc fills every cell whose center lies within radius of (x, z), and at
// least the center cell.
func (v mapView) disc(scr *core.Screen, x, z, radius float64, r rune, c core.Color) {
	cols := int(math.Ceil(radius/viewScale)) + 1
	rows := int(math.Ceil(radius/(viewScale*2))) + 1
	sx, sy, _ := v.toScreen(x, z)
	for dy := -rows; dy <= rows; dy++ {
		for dx := -cols; dx <= cols; dx++ {
			px, py := sx+dx, sy+dy
			if !v.area.Contains(px, py) {
				continue
			}
			wx, wz := v.toWorld(px, py)
			if core.Dist2(wx, wz, x, z) <= radius*radius {
				scr.SetColor(px, py, r, c)
			}
		}
	}
	v.put(scr, x, z, r, c)
}

// DrawSession renders the HUD, the map around the heli, the minimap and
// any overlay banner into scr.
func DrawSession(scr *core.Screen, s *sim.Session, opts ViewOptions) {
	scr.Clear()
	st := s.State()
	hud := s.HUD()

	area := core.NewRect(0, hudRows, scr.Width(), scr.Height()-hudRows-1)
	if area.W <= 0 || area.H <= 0 {
		drawHUD(scr, hud, s.HighScore())
		return
	}
	v := newMapView(area, &st.Heli, st.ViewNorth)
	anim := st.Cyclone.T + opts.Alpha*s.Config().Session.FixedDt

	drawTerrain(scr, v, st.World, anim)
	drawScenery(scr, v, st)
	drawCyclone(scr, v, st, s.Config().Cyclone.NearRadius, s.Config().Cyclone.MidRadius, anim)
	drawPlanes(scr, v, st)
	drawHeli(scr, v, st)
	drawMinimap(scr, area, st)
	drawHUD(scr, hud, s.HighScore())

	if opts.Flash != "" {
		scr.DrawTextColor(1, scr.Height()-1, opts.Flash, core.ColorHUD)
	}
	drawOverlay(scr, area, s, hud)
}

// terrainGlyph picks a rune and color for the ground at (x, z).
func terrainGlyph(w *world.World, x, z float64, sx, sy, tick int) (rune, core.Color) {
	half := w.Size / 2
	if x < -half || x > half || z < -half || z > half {
		return ' ', core.ColorDefault
	}
	cell := w.CellIndex(x, z)
	if w.Mask[cell] == 0 {
		if w.H[cell] > w.SeaLevel-shallowBand {
			return '~', core.ColorShallow
		}
		if (sx+2*sy+tick)%7 == 0 {
			return '~', core.ColorDeepSea
		}
		return ' ', core.ColorDeepSea
	}

	top := (1 - w.SeaLevel) * w.HeightScale
	frac := w.SampleGroundHeight(x, z) / top
	switch {
	case frac < 0.04:
		return '.', core.ColorSand
	case frac < 0.18:
		return ',', core.ColorGrass
	case frac < 0.35:
		return '"', core.ColorForest
	case frac < 0.55:
		return 'n', core.ColorRock
	default:
		return '^', core.ColorSnow
	}
}

func drawTerrain(scr *core.Screen, v mapView, w *world.World, anim float64) {
	tick := int(anim * 2)
	for sy := v.area.Y; sy < v.area.Bottom(); sy++ {
		for sx := v.area.X; sx < v.area.Right(); sx++ {
			x, z := v.toWorld(sx, sy)
			r, c := terrainGlyph(w, x, z, sx, sy, tick)
			scr.SetColor(sx, sy, r, c)
		}
	}
}

func drawScenery(scr *core.Screen, v mapView, st *sim.State) {
	w := st.World
	for _, o := range w.Occluders {
		v.put(scr, o.X, o.Z, 'I', core.ColorRock)
	}
	for _, t := range w.Trees {
		v.put(scr, t.X, t.Z, '♣', core.ColorTree)
	}
	for _, b := range w.Buildings {
		v.disc(scr, b.X, b.Z, b.R, '#', core.ColorBuilding)
	}
	for i := range w.Helipads {
		pad := &w.Helipads[i]
		color := core.ColorPad
		if pad.IsBase() {
			color = core.ColorBasePad
		}
		v.disc(scr, pad.X, pad.Z, pad.Radius, '=', color)
		v.put(scr, pad.X, pad.Z, 'H', color)
	}
	for i, c := range w.Crates {
		if c.Collected || i >= st.Start.CrateIndex {
			continue
		}
		v.put(scr, c.X, c.Z, '■', core.ColorCrate)
	}
	for _, r := range w.Refugees {
		if !r.Saved {
			v.put(scr, r.X, r.Z, '☺', core.ColorRefugee)
		}
	}
}

func drawCyclone(scr *core.Screen, v mapView, st *sim.State, near, mid, anim float64) {
	cy := st.Cyclone
	spin := []rune{'/', '-', '\\', '|'}
	// Sparse outer band, dense spinning core.
	sx, sy, _ := v.toScreen(cy.X, cy.Z)
	cols := int(mid/viewScale) + 1
	rows := int(mid/(viewScale*2)) + 1
	frame := int(anim * 8)
	for dy := -rows; dy <= rows; dy++ {
		for dx := -cols; dx <= cols; dx++ {
			px, py := sx+dx, sy+dy
			if !v.area.Contains(px, py) {
				continue
			}
			wx, wz := v.toWorld(px, py)
			d := core.Dist(wx, wz, cy.X, cy.Z)
			switch {
			case d <= near:
				scr.SetColor(px, py, spin[((frame+dx+dy)%len(spin)+len(spin))%len(spin)], core.ColorCyclone)
			case d <= mid && (dx*3+dy*5+frame)%6 == 0:
				scr.SetColor(px, py, '·', core.ColorCyclone)
			}
		}
	}
	v.put(scr, cy.X, cy.Z, '@', core.ColorCyclone)
}

func drawPlanes(scr *core.Screen, v mapView, st *sim.State) {
	for _, p := range st.Planes {
		vx, vz := p.VX*v.flip, p.VZ*v.flip
		glyph := '>'
		switch {
		case vx < 0:
			glyph = '<'
		case vz > 0:
			glyph = 'v'
		case vz < 0:
			glyph = '^'
		}
		v.disc(scr, p.X, p.Z, p.R*0.5, '=', core.ColorPlane)
		v.put(scr, p.X, p.Z, glyph, core.ColorPlane)
	}
}

func drawHeli(scr *core.Screen, v mapView, st *sim.State) {
	h := st.Heli
	if st.Rope.Active() {
		v.put(scr, st.Rope.Tip.X, st.Rope.Tip.Z, '+', core.ColorRope)
	}
	heading := h.Heading
	if v.flip < 0 {
		heading += math.Pi
	}
	octant := int(math.Round(heading/(math.Pi/4))) % len(heliGlyphs)
	if octant < 0 {
		octant += len(heliGlyphs)
	}
	scr.SetColor(v.cx, v.cy, heliGlyphs[octant], core.ColorHeli)
}

// drawMinimap draws the whole archipelago in the top-right corner with
// delayed radar contacts.
func drawMinimap(scr *core.Screen, area core.Rect, st *sim.State) {
	w, h := miniW, miniH
	if st.MapLarge {
		w, h = bigW, bigH
	}
	if area.W < w+4 || area.H < h+2 {
		return
	}
	box := core.NewRect(area.Right()-w-1, area.Y, w, h)
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	wd := st.World
	half := wd.Size / 2
	flip := 1.0
	if !st.ViewNorth {
		flip = -1
	}

	toWorld := func(ix, iy int) (float64, float64) {
		x := (float64(ix)+0.5)/float64(inner.W)*wd.Size - half
		z := (float64(iy)+0.5)/float64(inner.H)*wd.Size - half
		return x * flip, z * flip
	}
	put := func(x, z float64, r rune, c core.Color) {
		x, z = x*flip, z*flip
		ix := int((x + half) / wd.Size * float64(inner.W))
		iy := int((z + half) / wd.Size * float64(inner.H))
		if ix >= 0 && ix < inner.W && iy >= 0 && iy < inner.H {
			scr.SetColor(inner.X+ix, inner.Y+iy, r, c)
		}
	}

	scr.DrawRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, core.ColorDim)
	for iy := 0; iy < inner.H; iy++ {
		for ix := 0; ix < inner.W; ix++ {
			x, z := toWorld(ix, iy)
			if wd.IsLand(x, z) {
				scr.SetColor(inner.X+ix, inner.Y+iy, '.', core.ColorGrass)
			}
		}
	}
	for i := range wd.Helipads {
		pad := &wd.Helipads[i]
		if pad.IsBase() {
			put(pad.X, pad.Z, 'B', core.ColorBasePad)
		} else {
			put(pad.X, pad.Z, 'h', core.ColorPad)
		}
	}
	for i, c := range wd.Crates {
		if !c.Collected && i < st.Start.CrateIndex {
			put(c.X, c.Z, '■', core.ColorCrate)
		}
	}
	put(st.Radar.Cyclone.X, st.Radar.Cyclone.Z, '@', core.ColorCyclone)
	for _, p := range st.Radar.Planes {
		put(p.X, p.Z, 'x', core.ColorPlane)
	}
	put(st.Heli.X, st.Heli.Z, '+', core.ColorHeli)
	scr.DrawTextColor(box.X+2, box.Y, " MAP ", core.ColorDim)
}

// bar renders a stepped gauge.
func bar(norm float64, width int) string {
	n := core.Clamp(int(math.Round(norm*float64(width))), 0, width)
	return "[" + strings.Repeat("▮", n) + strings.Repeat("▯", width-n) + "]"
}

func lives(h sim.HUD) string {
	return strings.Repeat("♥", h.Lives) + strings.Repeat("♡", max(0, h.LivesMax-h.Lives))
}

func drawHUD(scr *core.Screen, h sim.HUD, high int) {
	top := fmt.Sprintf(" ROUND %d  SCORE %06d  HI %06d  %s  CRATES %d/%d  RESCUED %d/%d  TIME %s",
		h.Round, h.Score, high, lives(h), h.CratesCollected, h.CratesTotal,
		h.RefugeesSaved, h.RefugeesTotal, h.Clock)
	scr.DrawTextColor(0, 0, top, core.ColorHUD)

	x := 0
	write := func(text string, c core.Color) {
		scr.DrawTextColor(x, 1, text, c)
		x += len([]rune(text))
	}
	write(fmt.Sprintf(" ALT %s %4.1f  SPD %s %+d  FUEL %s %3.0f",
		bar(h.AltNorm, barWidth), h.Alt, bar(h.SpeedNorm, 3), h.SpeedLevel,
		bar(h.FuelNorm, 5), h.Fuel), core.ColorHUD)

	fuelLow := h.FuelNorm <= 0.2 && h.CratesShown >= h.CratesTotal
	if fuelLow {
		write("  LOW FUEL", core.ColorAlert)
	}
	if h.WindAlert {
		write("  CYCLONE", core.ColorAlert)
	} else if h.WindForce > 0 {
		write(fmt.Sprintf("  WIND %2.0f%%", h.WindForce*100), core.ColorHUD)
	}
	if h.AircraftAlert {
		write(fmt.Sprintf("  AIRCRAFT %2.0f", h.NearestPlane), core.ColorAlert)
	}
	switch {
	case h.Refueling:
		write("  REFUELLING", core.ColorPad)
	case h.Landed:
		write("  LANDED", core.ColorDim)
	}
	if h.RopePhase != sim.RopeIdle {
		write("  ROPE "+h.RopePhase.String(), core.ColorRope)
	}
	if !h.ViewNorth {
		write("  VIEW S", core.ColorDim)
	}
}

// drawOverlay draws the centered banner for pause, crash, round end and
// game over.
func drawOverlay(scr *core.Screen, area core.Rect, s *sim.Session, h sim.HUD) {
	if h.Overlay == "" {
		return
	}
	lines := []string{h.Overlay}
	switch {
	case s.Ended():
		lines = append(lines,
			fmt.Sprintf("SCORE %d   BEST %d", h.Score, s.HighScore()),
			"N new game   B menu   Q quit")
	case h.Paused:
		lines = append(lines, "P resume   B menu")
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect((scr.Width()-width-4)/2, area.Y+area.H/2-len(lines)/2-1, width+4, len(lines)+2)
	scr.DrawRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, core.ColorAlert)
	for i, l := range lines {
		c := core.ColorHUD
		if i == 0 {
			c = core.ColorAlert
		}
		scr.DrawTextCentered(box.Y+1+i, l, c)
	}
}
