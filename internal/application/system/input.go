package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem turns ebiten's polled input state into discrete events
type InputSystem struct {
	keys   []ebiten.Key
	lastX  int
	lastY  int
	primed bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: make([]ebiten.Key, 0, 8)}
}

// MapKey maps a physical key to a game key: WASD moves, Space confirms
func MapKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyA:
		return KeyLeft
	case ebiten.KeyD:
		return KeyRight
	case ebiten.KeyW:
		return KeyUp
	case ebiten.KeyS:
		return KeyDown
	case ebiten.KeySpace:
		return KeyConfirm
	default:
		return KeyUnknown
	}
}

// Poll returns the events since the previous tick: key downs, then key ups,
// then at most one pointer motion.
func (s *InputSystem) Poll() []Event {
	var events []Event

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		events = append(events, KeyEvent{Key: MapKey(k), Down: true})
	}

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		events = append(events, KeyEvent{Key: MapKey(k), Down: false})
	}

	x, y := ebiten.CursorPosition()
	if motion, ok := s.motion(x, y, ebiten.CursorMode() == ebiten.CursorModeCaptured); ok {
		events = append(events, motion)
	}

	return events
}

// motion diffs the cursor against the previous tick. The first sample only primes.
func (s *InputSystem) motion(x, y int, captured bool) (MotionEvent, bool) {
	defer func() {
		s.lastX, s.lastY, s.primed = x, y, true
	}()
	if !s.primed || (x == s.lastX && y == s.lastY) {
		return MotionEvent{}, false
	}
	return MotionEvent{
		XRel:     float32(x - s.lastX),
		YRel:     float32(y - s.lastY),
		Captured: captured,
	}, true
}
