package replay

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileforge/internal/input"
)

func TestFrameInput_CompactJSON(t *testing.T) {
	fi := FromSnapshot(3, input.Snapshot{
		Held:    input.Keys(input.KeyRight, input.KeyJump),
		Pressed: input.Keys(input.KeyJump),
		CursorX: 10,
		CursorY: 20,
	})

	raw, err := json.Marshal(fi)
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, `"f":3`)
	assert.Contains(t, s, `"mx":10`)
	assert.NotContains(t, s, `"kr"`, "empty sets are omitted")
	assert.NotContains(t, s, `"w"`)
}

func TestFrameInput_SnapshotRoundTrip(t *testing.T) {
	in := input.Snapshot{
		Held:            input.Keys(input.KeyLeft, input.KeySprint),
		Pressed:         input.Keys(input.KeySprint),
		Released:        input.Keys(input.KeyJump),
		Buttons:         input.ButtonSet(0).With(input.MouseLeft),
		ButtonsPressed:  input.ButtonSet(0).With(input.MouseLeft),
		ButtonsReleased: input.ButtonSet(0).With(input.MouseRight),
		CursorX:         5,
		CursorY:         6,
		Wheel:           -1,
	}

	out := FromSnapshot(0, in).Snapshot()

	assert.Equal(t, in, out)
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(7, "spawn")

	rec.RecordFrame(input.Snapshot{CursorX: 1})
	rec.RecordFrame(input.Snapshot{CursorX: 2})
	rec.Stop()
	rec.RecordFrame(input.Snapshot{CursorX: 3})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 7, data.Seed)
	assert.Equal(t, "spawn", data.Stage)
	assert.Equal(t, 1, data.Frames[1].F)
	_, err := uuid.Parse(data.Session)
	assert.NoError(t, err, "session id is a uuid")
}

func TestRecorder_EmptyRefusesToSave(t *testing.T) {
	rec := NewRecorder(0, "")

	var buf bytes.Buffer
	assert.Error(t, rec.Encode(&buf))
	assert.Error(t, rec.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(42, "cave")
	rec.SetViewport(1200, 720)
	for _, s := range input.Hold(3, input.KeyRight) {
		rec.RecordFrame(s)
	}
	path := filepath.Join(t.TempDir(), "run.json")

	require.NoError(t, rec.Save(path))
	data, err := LoadReplay(path)
	require.NoError(t, err)

	assert.Equal(t, rec.Data().Session, data.Session)
	assert.Equal(t, 42, data.Seed)
	assert.Equal(t, 1200, data.Width)
	assert.Equal(t, 720, data.Height)
	require.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[0].KP.Has(input.KeyRight))
	assert.False(t, data.Frames[1].KP.Has(input.KeyRight))
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{"version":"2.0","frames":[]}`))
	assert.Error(t, err, "a replay without frames is rejected")
}

func TestReplayer_Poll(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Stage:   "test",
		Frames: []FrameInput{
			{F: 0, K: input.Keys(input.KeyLeft), MX: 100, MY: 100},
			{F: 1, K: input.Keys(input.KeyRight, input.KeyJump), KP: input.Keys(input.KeyJump), MX: 110, MY: 95},
			{F: 2, MX: 120, MY: 90},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	s, ok := replayer.Poll()
	require.True(t, ok)
	assert.True(t, s.Down(input.KeyLeft))
	assert.False(t, s.Down(input.KeyRight))
	assert.Equal(t, 100, s.CursorX)
	assert.Zero(t, s.DeltaX)

	// Frame 1
	s, ok = replayer.Poll()
	require.True(t, ok)
	assert.False(t, s.Down(input.KeyLeft))
	assert.True(t, s.Down(input.KeyRight))
	assert.True(t, s.JustPressed(input.KeyJump))
	assert.Equal(t, 10, s.DeltaX)
	assert.Equal(t, -5, s.DeltaY)

	// Frame 2
	s, ok = replayer.Poll()
	require.True(t, ok)
	assert.False(t, s.Down(input.KeyRight))

	// End of frames
	_, ok = replayer.Poll()
	assert.False(t, ok)
}

func TestReplayer_ImplementsProvider(t *testing.T) {
	var p input.Provider = NewReplayer(CreateTestReplayData(2, 0, 0))

	n := 0
	for {
		if _, ok := p.Poll(); !ok {
			break
		}
		n++
	}
	assert.Equal(t, 2, n)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5, 100, 100)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Poll()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.Poll()
	replayer.Poll()
	assert.Equal(t, 3, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestReplayer_Metadata(t *testing.T) {
	data := CreateTestReplayData(10, 100, 100)
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, 12345, replayer.Seed())
	assert.Equal(t, "test", replayer.Stage())
	w, h := replayer.Viewport()
	assert.Zero(t, w, "no recorded viewport")
	assert.Zero(t, h)

	data.Width, data.Height = 320, 240
	w, h = NewReplayer(data).Viewport()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseAfter(t *testing.T) {
	closeErr := errors.New("disk full")
	encodeErr := errors.New("encode failed")

	tests := []struct {
		name    string
		closer  failingCloser
		err     error
		wantErr error
	}{
		{"both succeed", failingCloser{}, nil, nil},
		{"close error is reported", failingCloser{err: closeErr}, nil, closeErr},
		{"write error wins", failingCloser{err: closeErr}, encodeErr, encodeErr},
		{"write error with clean close", failingCloser{}, encodeErr, encodeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := closeAfter(tt.closer, tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}
