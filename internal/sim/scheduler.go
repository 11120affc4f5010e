package sim

// Scheduler runs deferred actions after a delay in simulation seconds.
// It only advances when the session steps, so pausing also holds every
// pending transition.
type Scheduler struct {
	queue []scheduled
}

type scheduled struct {
	remaining float64
	label     string
	fn        func()
}

// After queues fn to run once delay seconds of simulation time pass.
func (s *Scheduler) After(delay float64, label string, fn func()) {
	s.queue = append(s.queue, scheduled{remaining: delay, label: label, fn: fn})
}

// Advance moves time forward and runs due actions in the order they were
// queued. Actions queued while running wait for the next Advance.
func (s *Scheduler) Advance(dt float64) {
	if len(s.queue) == 0 {
		return
	}
	var due []func()
	kept := s.queue[:0]
	for _, item := range s.queue {
		item.remaining -= dt
		if item.remaining <= 0 {
			due = append(due, item.fn)
			continue
		}
		kept = append(kept, item)
	}
	s.queue = kept
	for _, fn := range due {
		fn()
	}
}

// Pending returns the labels of queued actions.
func (s *Scheduler) Pending() []string {
	out := make([]string, len(s.queue))
	for i, item := range s.queue {
		out[i] = item.label
	}
	return out
}

// Clear drops every queued action.
func (s *Scheduler) Clear() {
	s.queue = nil
}
