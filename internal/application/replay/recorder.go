package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/input"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a world seed and stage
func NewRecorder(seed int, stage string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Session:   uuid.NewString(),
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(s input.Snapshot) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FromSnapshot(r.frame, s))
	r.frame++
}

// Encode writes the replay data as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return eris.New("no frames to save")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return eris.Wrap(err, "failed to encode replay")
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return eris.New("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return eris.Wrapf(err, "failed to create %s", filename)
	}
	return closeAfter(file, r.Encode(file))
}

// closeAfter closes c and reports its error unless err is already set
func closeAfter(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return eris.Wrap(cerr, "failed to close replay file")
	}
	return err
}

// SetViewport records the frame size the cursor positions refer to
func (r *Recorder) SetViewport(w, h int) {
	r.data.Width, r.data.Height = w, h
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
