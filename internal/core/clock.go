package core

// Clock converts variable frame time into fixed simulation steps.
// Frame time is capped so a stalled host cannot trigger a spiral of
// catch-up steps; surplus beyond MaxSteps is dropped.
type Clock struct {
	FixedDt    float64
	MaxFrameDt float64
	MaxSteps   int

	acc float64
}

// NewClock creates a fixed-step clock.
func NewClock(fixedDt, maxFrameDt float64, maxSteps int) *Clock {
	return &Clock{
		FixedDt:    fixedDt,
		MaxFrameDt: maxFrameDt,
		MaxSteps:   maxSteps,
	}
}

// Advance feeds elapsed wall time in seconds and returns how many fixed
// steps to run now.
func (c *Clock) Advance(frameDt float64) int {
	if frameDt < 0 {
		frameDt = 0
	}
	if frameDt > c.MaxFrameDt {
		frameDt = c.MaxFrameDt
	}
	c.acc += frameDt

	steps := 0
	for c.acc >= c.FixedDt && steps < c.MaxSteps {
		c.acc -= c.FixedDt
		steps++
	}
	if steps == c.MaxSteps && c.acc >= c.FixedDt {
		c.acc = 0
	}
	return steps
}

// Alpha is the interpolation fraction between the last two steps.
// It is for drawing only and must never feed back into simulation state.
func (c *Clock) Alpha() float64 {
	return ClampF(c.acc/c.FixedDt, 0, 1)
}

// Reset drops accumulated time.
func (c *Clock) Reset() {
	c.acc = 0
}
