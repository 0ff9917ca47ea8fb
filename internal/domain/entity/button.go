// Package entity holds small gameplay value types.
package entity

// Button tracks one key: its level state and the key-down edges seen
// since the counters were last cleared.
type Button struct {
	Pressed bool
	Downs   uint8
}

// Press records a key-down edge
func (b *Button) Press() {
	b.Downs++
	b.Pressed = true
}

// Release records a key-up edge
func (b *Button) Release() {
	b.Pressed = false
}

// ClearDowns resets the edge counter once a frame has consumed it
func (b *Button) ClearDowns() {
	b.Downs = 0
}

// Exclusive reports whether b is held and its opposite is not.
// Holding both cancels out.
func (b Button) Exclusive(opposite Button) bool {
	return b.Pressed && !opposite.Pressed
}
