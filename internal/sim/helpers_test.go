package sim

import (
	"testing"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/world"
)

const testDt = 1.0 / 60

func testWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.Generate(config.DefaultConfig(), "ZXRESCUE", 1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return w
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// seaPoint returns the center of some sea cell.
func seaPoint(t *testing.T, w *world.World) core.Vec2 {
	t.Helper()
	for c, m := range w.Mask {
		if m == 0 {
			return w.CellToWorld(c)
		}
	}
	t.Fatal("world has no sea")
	return core.Vec2{}
}

// airborneState places an airborne heli at (x, z) with the given altitude
// and resolved surface.
func airborneState(w *world.World, x, z, alt float64) *State {
	s := &State{World: w, Fuel: 100, TimeLeft: 360, Lives: 3, LivesMax: 3}
	s.Heli = Heli{X: x, Z: z, Alt: alt}
	NewPhysicsSystem(config.DefaultConfig().Flight).resolveSurface(s)
	return s
}

type memSaver struct {
	scores map[string]int
	runs   []RunResult
}

func newMemSaver() *memSaver {
	return &memSaver{scores: map[string]int{}}
}

func (m *memSaver) HighScore(key string) (int, error) {
	return m.scores[key], nil
}

func (m *memSaver) SaveHighScore(key string, score int) error {
	m.scores[key] = score
	return nil
}

func (m *memSaver) SaveRunResult(r RunResult) error {
	m.runs = append(m.runs, r)
	return nil
}
