package replay

import "github.com/younwookim/balloon/internal/application/system"

const (
	kindKey    = "key"
	kindMotion = "motion"
)

// EncodeEvents converts input events into their recorded form
func EncodeEvents(events []system.Event) []EventRecord {
	if len(events) == 0 {
		return nil
	}
	out := make([]EventRecord, 0, len(events))
	for _, evt := range events {
		switch e := evt.(type) {
		case system.KeyEvent:
			out = append(out, EventRecord{K: kindKey, N: e.Key.String(), D: e.Down})
		case system.MotionEvent:
			out = append(out, EventRecord{K: kindMotion, X: e.XRel, Y: e.YRel, C: e.Captured})
		}
	}
	return out
}

// DecodeEvents converts recorded events back into input events.
// Records of an unknown kind are skipped.
func DecodeEvents(records []EventRecord) []system.Event {
	if len(records) == 0 {
		return nil
	}
	out := make([]system.Event, 0, len(records))
	for _, r := range records {
		switch r.K {
		case kindKey:
			out = append(out, system.KeyEvent{Key: system.ParseKey(r.N), Down: r.D})
		case kindMotion:
			out = append(out, system.MotionEvent{XRel: r.X, YRel: r.Y, Captured: r.C})
		}
	}
	return out
}
