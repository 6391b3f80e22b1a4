// Package sandbox provides the interactive tile-world scene.
package sandbox

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/application/replay"
	"github.com/younwookim/tileforge/internal/application/scene"
	"github.com/younwookim/tileforge/internal/application/session"
	"github.com/younwookim/tileforge/internal/input"
	"github.com/younwookim/tileforge/internal/present"
)

// Sandbox drives a session from an input provider and presents its frames
type Sandbox struct {
	session   *session.Session
	provider  input.Provider
	presenter *present.Ebiten
	log       *slog.Logger

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a sandbox scene.
// If recordPath is not empty, every polled snapshot is recorded with the
// session's frame size and saved on exit.
func New(s *session.Session, provider input.Provider, recordPath string, seed int, stage string, log *slog.Logger) *Sandbox {
	if log == nil {
		log = slog.Default()
	}
	sb := &Sandbox{
		session:        s,
		provider:       provider,
		presenter:      present.NewEbiten(),
		log:            log,
		recordFilename: recordPath,
	}
	if recordPath != "" {
		sb.recorder = replay.NewRecorder(seed, stage)
		w, h := s.Size()
		sb.recorder.SetViewport(w, h)
		log.Info("recording enabled", "path", recordPath, "seed", seed, "w", w, "h", h)
	}
	return sb
}

// Update polls input and steps the session (implements scene.Scene).
// An exhausted provider ends the game.
func (sb *Sandbox) Update(dt float64) (scene.Scene, error) {
	in, ok := sb.provider.Poll()
	if !ok {
		return nil, ebiten.Termination
	}
	if sb.recorder != nil {
		sb.recorder.RecordFrame(in)
	}
	sb.session.Step(in, dt)
	return nil, nil // nil = stay on this scene
}

// Draw renders the session and uploads it to the screen
func (sb *Sandbox) Draw(screen *ebiten.Image) {
	sb.presenter.SetTarget(screen)
	if err := sb.presenter.Present(sb.session.Render()); err != nil {
		sb.log.Error("present failed", "error", err)
	}
}

// Resize implements scene.Resizer. While recording the frame size stays at
// the recorded viewport and the presenter scales it to the window.
func (sb *Sandbox) Resize(w, h int) {
	if sb.recorder != nil {
		return
	}
	sb.session.Resize(w, h)
}

// OnEnter is called when entering this scene
func (sb *Sandbox) OnEnter() {
	sb.log.Debug("sandbox entered")
}

// OnExit saves the recording, if any
func (sb *Sandbox) OnExit() {
	if err := sb.saveRecording(); err != nil {
		sb.log.Error("failed to save recording", "error", err)
	}
}

// Recorder returns the active recorder, or nil when not recording
func (sb *Sandbox) Recorder() *replay.Recorder {
	return sb.recorder
}

func (sb *Sandbox) saveRecording() error {
	if sb.recorder == nil || sb.recorder.FrameCount() == 0 {
		return nil
	}
	sb.recorder.Stop()

	filename := sb.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := sb.recorder.Save(filename); err != nil {
		return eris.Wrap(err, "save recording")
	}
	sb.log.Info("recording saved", "path", filename, "frames", sb.recorder.FrameCount())
	return nil
}
