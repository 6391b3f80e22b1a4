package replay

import "github.com/younwookim/tileforge/internal/input"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int             `json:"f"`            // Frame number
	K  input.KeySet    `json:"k,omitempty"`  // Held keys
	KP input.KeySet    `json:"kp,omitempty"` // Keys pressed this frame
	KR input.KeySet    `json:"kr,omitempty"` // Keys released this frame
	B  input.ButtonSet `json:"b,omitempty"`  // Held buttons
	BP input.ButtonSet `json:"bp,omitempty"` // Buttons pressed this frame
	BR input.ButtonSet `json:"br,omitempty"` // Buttons released this frame
	MX int             `json:"mx"`           // MouseX
	MY int             `json:"my"`           // MouseY
	W  float64         `json:"w,omitempty"`  // Wheel
}

// ReplayData contains all data needed to replay a session.
// Cursor positions are screen pixels, so playback must use the recorded
// frame size to reach the same tiles.
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Seed      int          `json:"seed"`
	Stage     string       `json:"stage"`
	Width     int          `json:"width,omitempty"`  // Frame width in pixels
	Height    int          `json:"height,omitempty"` // Frame height in pixels
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromSnapshot captures frame f of a snapshot
func FromSnapshot(f int, s input.Snapshot) FrameInput {
	return FrameInput{
		F:  f,
		K:  s.Held,
		KP: s.Pressed,
		KR: s.Released,
		B:  s.Buttons,
		BP: s.ButtonsPressed,
		BR: s.ButtonsReleased,
		MX: s.CursorX,
		MY: s.CursorY,
		W:  s.Wheel,
	}
}

// Snapshot rebuilds the recorded input. Cursor deltas are not stored.
func (fi FrameInput) Snapshot() input.Snapshot {
	return input.Snapshot{
		Held:            fi.K,
		Pressed:         fi.KP,
		Released:        fi.KR,
		Buttons:         fi.B,
		ButtonsPressed:  fi.BP,
		ButtonsReleased: fi.BR,
		CursorX:         fi.MX,
		CursorY:         fi.MY,
		Wheel:           fi.W,
	}
}
