package sim

// EventKind identifies a one-shot cue for audio and HUD collaborators.
// Events never feed back into the simulation.
type EventKind int

const (
	EventDrop     EventKind = iota // A crate announced during the start sequence
	EventTick                      // Start-up fuel increment
	EventPickup                    // A crate or refugee winched aboard
	EventRefuel                    // Refuelling started on a pad
	EventCrash                     // Crash recorded, Text is the reason
	EventRespawn                   // Round rebuilt after a crash
	EventRound                     // Round complete, Text is the finished round
	EventGameOver                  // Session ended, Text is the end reason
)

func (k EventKind) String() string {
	switch k {
	case EventDrop:
		return "drop"
	case EventTick:
		return "tick"
	case EventPickup:
		return "pickup"
	case EventRefuel:
		return "refuel"
	case EventCrash:
		return "crash"
	case EventRespawn:
		return "respawn"
	case EventRound:
		return "round"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Event is a queued cue.
type Event struct {
	Kind EventKind
	Text string
}
