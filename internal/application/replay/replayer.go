package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/balloon/internal/application/system"
)

// ErrFinished is returned once every recorded frame has been played back
var ErrFinished = errors.New("replay finished")

// Frame is one frame of playback
type Frame struct {
	Elapsed float32
	Events  []system.Event
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the current frame and advances
func (r *Replayer) Next() (Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return Frame{
		Elapsed: fi.DT,
		Events:  DecodeEvents(fi.E),
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Session returns the recorded session ID
func (r *Replayer) Session() string {
	return r.data.Session
}

// Scene returns the name of the scene the replay was recorded in
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: frames of fixed dt, no input
func CreateTestReplayData(frames int, dt float32) ReplayData {
	data := ReplayData{
		Version:   "2.0",
		Session:   "00000000-0000-0000-0000-000000000000",
		Scene:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: dt,
		}
	}

	return data
}
