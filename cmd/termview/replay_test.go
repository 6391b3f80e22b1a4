package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileforge/internal/application/replay"
	"github.com/younwookim/tileforge/internal/application/session"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
	"github.com/younwookim/tileforge/internal/input"
)

func createTestSession(t *testing.T, seed int) *session.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Display.ScreenWidth = 160
	cfg.Display.ScreenHeight = 96
	cfg.World.Seed = seed
	s, err := session.New(session.Options{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)
	return s
}

// SimulationResult contains the results of a replay simulation
type SimulationResult struct {
	VYValues   []float64
	Positions  [][2]float64
	FinalFrame int
}

// simulateWithReplay runs a session using replayed inputs
func simulateWithReplay(replayer *replay.Replayer, s *session.Session) SimulationResult {
	dt := 1.0 / 60.0
	result := SimulationResult{
		VYValues:  make([]float64, 0, replayer.TotalFrames()),
		Positions: make([][2]float64, 0, replayer.TotalFrames()),
	}

	for s.Advance(replayer, dt) {
		tr, _ := s.World().Transform.Get(s.Player())
		v, _ := s.World().Velocity.Get(s.Player())
		result.VYValues = append(result.VYValues, v.V.Y())
		result.Positions = append(result.Positions, [2]float64{tr.Pos.X(), tr.Pos.Y()})
		result.FinalFrame = replayer.CurrentFrame()
	}
	return result
}

func TestReplayIdlePlayer_VelocityStability(t *testing.T) {
	// Player standing still for 120 frames (2 seconds)
	replayer := replay.NewReplayer(replay.CreateTestReplayData(120, 80, 48))

	result := simulateWithReplay(replayer, createTestSession(t, 0))

	require.Equal(t, 120, result.FinalFrame)
	// Settled well before frame 60
	for i, vy := range result.VYValues[60:] {
		assert.Equal(t, 0.0, vy, "frame %d", 60+i)
		assert.Equal(t, result.Positions[60], result.Positions[60+i])
	}
}

func TestReplayDeterminism(t *testing.T) {
	frames := input.Hold(30, input.KeyLeft)
	frames = append(frames, input.Hold(10, input.KeyJump, input.KeyRight)...)
	frames = append(frames, input.Hold(50, input.KeyRight, input.KeySprint)...)

	rec := replay.NewRecorder(3, "platform")
	for _, f := range frames {
		rec.RecordFrame(f)
	}

	a := simulateWithReplay(replay.NewReplayer(rec.Data()), createTestSession(t, 3))
	b := simulateWithReplay(replay.NewReplayer(rec.Data()), createTestSession(t, 3))

	assert.Equal(t, a.Positions, b.Positions)
	assert.Equal(t, len(frames), a.FinalFrame)
}

func TestReplayWithMovement(t *testing.T) {
	data := replay.CreateTestReplayData(60, 80, 48)
	right := input.Keys(input.KeyRight)
	for i := 30; i < 60; i++ {
		data.Frames[i].K = right
	}
	data.Frames[30].KP = right

	result := simulateWithReplay(replay.NewReplayer(data), createTestSession(t, 0))

	assert.Equal(t, result.Positions[0][0], result.Positions[29][0], "idle frames keep x")
	assert.Greater(t, result.Positions[59][0], result.Positions[29][0], "moved right")
}
