package system

// Event is a discrete input event delivered to a game mode
type Event interface {
	isEvent()
}

// Key is a game-level key, decoupled from the physical key that produced it
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyConfirm
)

// String returns the string representation of the key
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// ParseKey is the inverse of Key.String
func ParseKey(s string) Key {
	for k := KeyLeft; k <= KeyConfirm; k++ {
		if k.String() == s {
			return k
		}
	}
	return KeyUnknown
}

// KeyEvent is a key going down or up
type KeyEvent struct {
	Key  Key
	Down bool
}

func (KeyEvent) isEvent() {}

// MotionEvent is relative pointer movement in window pixels.
// Captured is set when the pointer was in relative (captured) mode.
type MotionEvent struct {
	XRel, YRel float32
	Captured   bool
}

func (MotionEvent) isEvent() {}
