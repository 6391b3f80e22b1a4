package replay

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/input"
)

// Replayer plays recorded frames back as an input.Provider
type Replayer struct {
	data  ReplayData
	frame int
	prevX int
	prevY int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open %s", filename)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data from JSON
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, eris.Wrap(err, "failed to decode replay")
	}
	if len(data.Frames) == 0 {
		return nil, eris.New("replay has no frames")
	}
	return &data, nil
}

// Poll returns the input for the current frame and advances.
// Cursor deltas are derived from the previous frame.
func (r *Replayer) Poll() (input.Snapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Snapshot{}, false
	}

	s := r.data.Frames[r.frame].Snapshot()
	if r.frame > 0 {
		s.DeltaX, s.DeltaY = s.CursorX-r.prevX, s.CursorY-r.prevY
	}
	r.prevX, r.prevY = s.CursorX, s.CursorY
	r.frame++

	return s, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int {
	return r.data.Seed
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Viewport returns the recorded frame size, or zeros when the recording has none
func (r *Replayer) Viewport() (int, int) {
	return r.data.Width, r.data.Height
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
