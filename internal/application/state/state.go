package state

// Phase is the balloon's place in one play-through.
// Exactly one phase is active, so swelling and popping can never overlap.
type Phase int

const (
	// PhaseCollecting: looking for the next collectible, or the needle once all are taken
	PhaseCollecting Phase = iota
	// PhaseSwollen: inflating after a pickup until the swell timer runs out
	PhaseSwollen
	// PhasePopped: the needle was reached; waiting for a restart
	PhasePopped
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseCollecting:
		return "Collecting"
	case PhaseSwollen:
		return "Swollen"
	case PhasePopped:
		return "Popped"
	default:
		return "Unknown"
	}
}
