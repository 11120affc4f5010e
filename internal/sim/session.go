package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zxrescue/internal/config"
	"github.com/vovakirdan/zxrescue/internal/core"
	"github.com/vovakirdan/zxrescue/internal/rng"
	"github.com/vovakirdan/zxrescue/internal/world"
)

// tiltStep is the camera tilt change per wheel notch, in degrees.
const tiltStep = 5.0

// End reasons recorded when a session finishes.
const (
	EndOutOfLives = "out of lives"
	EndTimeUp     = "time up"
	EndGenFailed  = "generation failed"
)

// RunResult summarizes a finished session.
type RunResult struct {
	Seed      string
	Round     int
	Score     int
	Crates    int
	Refugees  int
	EndReason string
	SimTime   float64 // Seconds of unpaused simulation
}

// ResultSaver persists the high score and finished runs.
type ResultSaver interface {
	HighScore(key string) (int, error)
	SaveHighScore(key string, score int) error
	SaveRunResult(r RunResult) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Ticks never log.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSaver persists results at game over.
func WithSaver(rs ResultSaver) Option {
	return func(s *Session) {
		s.saver = rs
	}
}

// Session runs rounds of one seed: it steps the systems in a fixed order,
// turns crash reasons into lives lost and respawns, and moves to the next
// round once the current one is won.
type Session struct {
	cfg        config.Config
	seed       string
	logger     *log.Logger
	saver      ResultSaver
	difficulty *config.DifficultyManager

	state   *State
	flight  *FlightSystem
	physics *PhysicsSystem
	pickup  *PickupSystem
	cyclone *CycloneSystem
	planes  *PlaneSystem
	fuel    *FuelSystem

	sched        Scheduler
	inTransition bool
	overlay      string
	highScore    int
	ended        bool
	endReason    string

	crates   int // Totals over finished attempts
	refugees int
	simTime  float64

	pauseLatch   bool
	viewLatch    bool
	mapLatch     bool
	restartLatch bool
	events       []Event
}

// NewSession validates cfg and generates round 1 of seedText. An empty
// seed uses the configured default.
func NewSession(cfg config.Config, seedText string, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if seedText == "" {
		seedText = cfg.Session.DefaultSeed
	}

	s := &Session{
		cfg:        cfg,
		seed:       seedText,
		logger:     log.New(io.Discard),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		flight:     NewFlightSystem(cfg.Flight),
		physics:    NewPhysicsSystem(cfg.Flight),
		pickup:     NewPickupSystem(cfg.Rope, cfg.Fuel, cfg.Placement.CrateCount),
		fuel:       NewFuelSystem(cfg.Fuel),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.saver != nil {
		hs, err := s.saver.HighScore(cfg.Session.HighScoreKey)
		if err != nil {
			s.logger.Warn("could not read high score", "error", err)
		}
		s.highScore = hs
	}

	if err := s.SetupRound(1); err != nil {
		return nil, err
	}
	return s, nil
}

// SetupRound generates the world for round and rebuilds every per-round
// field. Score, lives, and view preferences carry over.
func (s *Session) SetupRound(round int) error {
	w, err := world.Generate(s.cfg, s.seed, round)
	if err != nil {
		return fmt.Errorf("sim: round %d: %w", round, err)
	}

	st := &State{
		SeedText:   s.seed,
		Round:      round,
		World:      w,
		Score:      0,
		Lives:      s.cfg.Session.Lives,
		LivesMax:   s.cfg.Session.Lives,
		ViewNorth:  true,
		CameraTilt: s.cfg.Session.CameraTilt,
		PlaneTimer: s.cfg.Planes.FirstSpawn,
		TimeLeft:   s.cfg.Fuel.TimeLimitSec,
		Start:      newStartSequence(s.cfg),
		Radar:      Radar{Cyclone: w.BasePos},
	}
	if prev := s.state; prev != nil {
		st.Score = prev.Score
		st.Lives = prev.Lives
		st.ViewNorth = prev.ViewNorth
		st.CameraTilt = prev.CameraTilt
		st.MapLarge = prev.MapLarge
	}
	s.placeHeli(st)

	scale := s.difficulty.ForRound(s.cfg.Cyclone, round)
	master := rng.New(s.seed)
	s.cyclone = NewCycloneSystem(s.cfg.Cyclone, s.cfg.Flight, scale, master.Fork(fmt.Sprintf("cyclone-r%d", round)))
	s.planes = NewPlaneSystem(s.cfg.Planes, scale, master.Fork(fmt.Sprintf("planes-r%d", round)))
	s.cyclone.Spawn(st)
	s.flight.Reset()

	s.state = st
	s.inTransition = false
	s.overlay = ""

	s.logger.Info("round ready",
		"seed", s.seed,
		"round", round,
		"retries", w.Attempt,
		"islands", len(w.Islands),
		"crates", len(w.Crates),
		"refugees", len(w.Refugees),
	)
	return nil
}

// placeHeli parks the heli on the base pad with an empty tank.
func (s *Session) placeHeli(st *State) {
	fl := s.cfg.Flight
	pad := st.World.BaseHelipad()
	deck := pad.Y + fl.PadDeckHeight
	st.Heli = Heli{
		X:        pad.X,
		Z:        pad.Z,
		Alt:      deck + fl.GroundClearance,
		OnLand:   true,
		Landed:   true,
		GroundY:  pad.Y,
		SurfaceY: deck,
		OverPad:  true,
		PadY:     deck,
	}
	anchor := Point3{X: pad.X, Y: st.Heli.Alt - s.cfg.Rope.AnchorDrop, Z: pad.Z}
	st.Rope = Rope{Anchor: anchor, Tip: anchor}
}

// Step runs one fixed tick. Order within a tick is flight, physics,
// pickup, cyclone, planes, fuel.
func (s *Session) Step(in core.InputFrame) {
	if s.ended {
		restart := in.Has(core.ActionRestart)
		if restart && !s.restartLatch {
			if err := s.Restart(); err != nil {
				s.logger.Error("restart failed", "error", err)
			}
		}
		s.restartLatch = restart
		return
	}
	s.restartLatch = in.Has(core.ActionRestart)

	s.handleToggles(in)
	if s.state.Paused {
		return
	}

	dt := s.cfg.Session.FixedDt
	s.simTime += dt
	s.sched.Advance(dt)
	if s.inTransition || s.ended {
		return
	}

	st := s.state
	if in.Wheel != 0 {
		st.CameraTilt = core.ClampF(st.CameraTilt-float64(in.Wheel)*tiltStep,
			s.cfg.Session.CameraTiltMin, s.cfg.Session.CameraTiltMax)
	}

	if !st.Start.Done {
		runStart(st, s.cfg, dt)
	} else {
		s.flight.Update(st, in, dt)
		s.physics.Update(st)
		s.pickup.Update(st, dt)
		s.cyclone.Update(st, dt)
		s.planes.Update(st, dt)
		s.fuel.Update(st, dt)
	}
	st.Radar.update(st, dt, s.cfg.Session)

	s.events = append(s.events, st.events...)
	st.events = st.events[:0]
	s.resolve()
}

// handleToggles applies the edge-latched pause, view and map keys.
func (s *Session) handleToggles(in core.InputFrame) {
	st := s.state
	if pause := in.Has(core.ActionPause); pause != s.pauseLatch {
		s.pauseLatch = pause
		if pause {
			st.Paused = !st.Paused
		}
	}
	if st.Paused {
		return
	}
	if view := in.Has(core.ActionToggleView); view != s.viewLatch {
		s.viewLatch = view
		if view {
			st.ViewNorth = !st.ViewNorth
		}
	}
	if m := in.Has(core.ActionToggleMap); m != s.mapLatch {
		s.mapLatch = m
		if m {
			st.MapLarge = !st.MapLarge
		}
	}
}

// resolve turns this tick's outcome into a transition.
func (s *Session) resolve() {
	st := s.state
	switch {
	case st.CrashReason != "":
		s.crash(st)
	case st.GameOver:
		s.finish(EndTimeUp)
	case st.WinRound:
		s.winRound(st)
	}
}

func (s *Session) tally(st *State) {
	s.crates += st.CratesCollected
	s.refugees += st.RefugeesSaved
}

func (s *Session) crash(st *State) {
	st.Lives--
	s.tally(st)
	s.inTransition = true
	s.overlay = "CRASH: " + st.CrashReason
	s.emitSession(EventCrash, st.CrashReason)
	s.logger.Warn("crash", "reason", st.CrashReason, "round", st.Round, "lives", st.Lives)

	switch {
	case st.Lives <= 0:
		s.finish(EndOutOfLives)
	case st.GameOver:
		s.finish(EndTimeUp)
	default:
		round := st.Round
		s.sched.After(s.cfg.Session.CrashDelay, "respawn", func() {
			if err := s.SetupRound(round); err != nil {
				s.logger.Error("respawn failed", "error", err)
				s.finish(EndGenFailed)
				return
			}
			s.emitSession(EventRespawn, "")
		})
	}
}

func (s *Session) winRound(st *State) {
	s.tally(st)
	s.inTransition = true
	s.overlay = fmt.Sprintf("ROUND %d COMPLETE", st.Round)
	s.emitSession(EventRound, fmt.Sprint(st.Round))
	s.logger.Info("round complete", "round", st.Round, "score", st.Score, "refugees", st.RefugeesSaved)

	next := st.Round + 1
	s.sched.After(s.cfg.Session.RoundDelay, "next-round", func() {
		if err := s.SetupRound(next); err != nil {
			s.logger.Error("next round failed", "error", err)
			s.finish(EndGenFailed)
		}
	})
}

// finish ends the session and persists the result.
func (s *Session) finish(reason string) {
	st := s.state
	if !s.inTransition {
		s.tally(st)
	}
	st.GameOver = true
	s.ended = true
	s.endReason = reason
	s.inTransition = false
	s.overlay = "GAME OVER"
	s.sched.Clear()
	s.emitSession(EventGameOver, reason)
	s.logger.Info("game over", "reason", reason, "round", st.Round, "score", st.Score)

	if s.saver == nil {
		return
	}
	key := s.cfg.Session.HighScoreKey
	if st.Score > s.highScore {
		if err := s.saver.SaveHighScore(key, st.Score); err != nil {
			s.logger.Warn("could not save high score", "error", err)
		} else {
			s.highScore = st.Score
		}
	}
	if err := s.saver.SaveRunResult(s.Result()); err != nil {
		s.logger.Warn("could not save run", "error", err)
	}
}

// Restart begins a fresh session on the same seed.
func (s *Session) Restart() error {
	prev := s.state
	s.state = nil
	if err := s.SetupRound(1); err != nil {
		s.state = prev
		return err
	}
	s.sched.Clear()
	s.ended = false
	s.endReason = ""
	s.crates, s.refugees = 0, 0
	s.simTime = 0
	return nil
}

func (s *Session) emitSession(kind EventKind, text string) {
	s.events = append(s.events, Event{Kind: kind, Text: text})
}

// DrainEvents returns and clears queued events.
func (s *Session) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

// State exposes the live round state for rendering.
func (s *Session) State() *State { return s.state }

// Seed returns the session seed text.
func (s *Session) Seed() string { return s.seed }

// Config returns the session configuration.
func (s *Session) Config() config.Config { return s.cfg }

// InTransition reports whether a crash or round change is pending.
func (s *Session) InTransition() bool { return s.inTransition }

// Pending returns the labels of scheduled transitions.
func (s *Session) Pending() []string { return s.sched.Pending() }

// Ended reports whether the session is over.
func (s *Session) Ended() bool { return s.ended }

// HighScore returns the best known score, including this session's.
func (s *Session) HighScore() int { return max(s.highScore, s.state.Score) }

// Overlay returns the centered banner text, if any.
func (s *Session) Overlay() string {
	if s.state.Paused {
		return "PAUSED"
	}
	return s.overlay
}

// HUD returns the status snapshot.
func (s *Session) HUD() HUD {
	return buildHUD(s.state, s.cfg, s.Overlay())
}

// GameState reports the platform-level status.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.state.Score,
		Round:    s.state.Round,
		GameOver: s.ended,
		Paused:   s.state.Paused,
	}
}

// Result summarizes the session so far.
func (s *Session) Result() RunResult {
	return RunResult{
		Seed:      s.seed,
		Round:     s.state.Round,
		Score:     s.state.Score,
		Crates:    s.crates,
		Refugees:  s.refugees,
		EndReason: s.endReason,
		SimTime:   s.simTime,
	}
}
