package session

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileforge/internal/application/replay"
	"github.com/younwookim/tileforge/internal/application/state"
	"github.com/younwookim/tileforge/internal/camera"
	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
	"github.com/younwookim/tileforge/internal/input"
	"github.com/younwookim/tileforge/internal/world"
)

const testDT = 1.0 / 60.0

func createTestConfig() *config.EngineConfig {
	cfg := config.Default()
	cfg.Display.ScreenWidth = 320
	cfg.Display.ScreenHeight = 240
	return cfg
}

func createTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(Options{
		Config: createTestConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return s
}

func playerState(t *testing.T, s *Session) (*ecs.Transform, *ecs.Velocity, *ecs.Collider) {
	t.Helper()
	w := s.World()
	tr, ok := w.Transform.Get(s.Player())
	require.True(t, ok)
	v, ok := w.Velocity.Get(s.Player())
	require.True(t, ok)
	c, ok := w.Collider.Get(s.Player())
	require.True(t, ok)
	return tr, v, c
}

func idle(s *Session, frames int) {
	for i := 0; i < frames; i++ {
		s.Step(input.Snapshot{}, testDT)
	}
}

func TestNew_BootstrapsPlatform(t *testing.T) {
	s := createTestSession(t)

	for x := -15; x <= 15; x++ {
		assert.Equal(t, world.Grass, s.Tiles().Get(x, 9))
		assert.Equal(t, world.Stone, s.Tiles().Get(x, 10))
	}

	tr, _, col := playerState(t, s)
	assert.Equal(t, mgl64.Vec2{0, 200}, tr.Pos)
	assert.Equal(t, mgl64.Vec2{14, 20}, col.Half)
	assert.True(t, s.World().Sprite.Has(s.Player()), "fallback sprite")

	torch, ok := s.World().Transform.Get(s.Torch())
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec2{0, 180}, torch.Pos)
	l, ok := s.World().Light.Get(s.Torch())
	require.True(t, ok)
	assert.Equal(t, 12, l.RadiusTiles)
	assert.Equal(t, uint8(255), l.Intensity)

	assert.Equal(t, mgl64.Vec2{0, 150}, s.Camera().Pos)
	assert.Equal(t, state.StatePlaying, s.State())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := createTestConfig()
	cfg.World.TilePx = 0

	_, err := New(Options{Config: cfg})

	assert.Error(t, err)
}

func TestNew_TorchDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.Lighting.Torch.Enabled = false

	s, err := New(Options{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	assert.Equal(t, ecs.Nil, s.Torch())
	assert.Equal(t, 0, s.World().Light.Len())
}

func TestNew_StageReplacesPlatform(t *testing.T) {
	stage, err := config.NewLoader("../../../cmd/sandbox/configs").LoadStage("cave")
	require.NoError(t, err)

	s, err := New(Options{Config: createTestConfig(), Stage: stage, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	assert.Equal(t, len(stage.Lights)+1, s.World().Light.Len(), "stage lights plus the torch")
}

func TestNew_LoadsSpriteFromAssets(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 6))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	cfg := createTestConfig()
	cfg.Player.Sprite = "player.png"
	cfg.Render.Tileset.Path = "missing.png"
	fsys := fstest.MapFS{"player.png": {Data: buf.Bytes()}}

	s, err := New(Options{Config: cfg, Assets: fsys, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	sp, ok := s.World().Sprite.Get(s.Player())
	require.True(t, ok)
	assert.Equal(t, 4, sp.Image.W)
	assert.Equal(t, 6, sp.Image.H)
}

// The player drops from (0, 200) onto the grass row, whose top is y = 288.
func TestSession_PlayerLandsOnPlatform(t *testing.T) {
	s := createTestSession(t)

	idle(s, 120)

	tr, v, col := playerState(t, s)
	assert.Equal(t, 288.0-20, tr.Pos.Y())
	assert.True(t, col.OnGround)
	assert.Equal(t, 0.0, v.V.Y())
	assert.Equal(t, 120, s.Frame())
}

// With the grass row dug away the player rests on stone: row 10 top is y = 320.
func TestSession_PlayerLandsOnStoneRow(t *testing.T) {
	s := createTestSession(t)
	for x := -15; x <= 15; x++ {
		s.Tiles().Set(x, 9, world.Empty)
	}

	idle(s, 120)

	tr, _, col := playerState(t, s)
	assert.Equal(t, 300.0, tr.Pos.Y())
	assert.True(t, col.OnGround)
}

func TestSession_TorchFollowsPlayer(t *testing.T) {
	s := createTestSession(t)

	idle(s, 120)

	tr, _, _ := playerState(t, s)
	torch, _ := s.World().Transform.Get(s.Torch())
	assert.Equal(t, tr.Pos.Add(mgl64.Vec2{0, -20}), torch.Pos)
}

func TestSession_CameraFollowsPlayer(t *testing.T) {
	s := createTestSession(t)
	before := s.Camera().Pos

	idle(s, 300)

	tr, _, _ := playerState(t, s)
	assert.Greater(t, s.Camera().Pos.Y(), before.Y())
	assert.InDelta(t, tr.Pos.Y(), s.Camera().Pos.Y(), 1)
}

func TestSession_DigAndPlaceUnderCursor(t *testing.T) {
	s := createTestSession(t)
	center := input.Snapshot{CursorX: 160, CursorY: 120}

	tests := []struct {
		name   string
		camera mgl64.Vec2
		button input.Button
		tx, ty int
		want   world.Tile
	}{
		{"left button digs grass", mgl64.Vec2{16, 300}, input.MouseLeft, 0, 9, world.Empty},
		{"right button places dirt", mgl64.Vec2{48, 140}, input.MouseRight, 1, 4, world.Dirt},
		{"right button keeps solid tiles", mgl64.Vec2{80, 330}, input.MouseRight, 2, 10, world.Stone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Camera().Pos = tt.camera
			in := center
			in.Buttons = input.ButtonSet(0).With(tt.button)
			in.ButtonsPressed = in.Buttons

			s.Step(in, testDT)

			tx, ty := s.Cursor()
			assert.Equal(t, tt.tx, tx)
			assert.Equal(t, tt.ty, ty)
			assert.Equal(t, tt.want, s.Tiles().Get(tt.tx, tt.ty))
		})
	}
}

func TestSession_HeldButtonEditsOnce(t *testing.T) {
	s := createTestSession(t)
	s.Camera().Pos = mgl64.Vec2{16, 300}
	click := input.Snapshot{CursorX: 160, CursorY: 120, Buttons: input.ButtonSet(0).With(input.MouseLeft)}
	click.ButtonsPressed = click.Buttons
	held := click
	held.ButtonsPressed = 0

	s.Step(click, testDT)
	require.Equal(t, world.Empty, s.Tiles().Get(0, 9))

	// Refill the dug tile; holding the button must not dig it again
	s.Tiles().Set(0, 9, world.Grass)
	s.Camera().Pos = mgl64.Vec2{16, 300}
	s.Step(held, testDT)

	tx, ty := s.Cursor()
	assert.Equal(t, 0, tx)
	assert.Equal(t, 9, ty)
	assert.Equal(t, world.Grass, s.Tiles().Get(0, 9))
}

func TestSession_WheelZoomClamps(t *testing.T) {
	s := createTestSession(t)

	s.Step(input.Snapshot{Wheel: 1}, testDT)
	assert.InDelta(t, 1.15, s.Camera().Zoom, 1e-9)

	s.Step(input.Snapshot{Wheel: 100}, testDT)
	assert.Equal(t, 4.0, s.Camera().Zoom)

	s.Step(input.Snapshot{Wheel: -100}, testDT)
	assert.Equal(t, 0.35, s.Camera().Zoom)
}

func TestSession_Toggles(t *testing.T) {
	s := createTestSession(t)
	require.True(t, s.HUDVisible())
	require.True(t, s.HighlightVisible())
	require.True(t, s.Bilinear())

	s.Step(input.Snapshot{Pressed: input.Keys(input.KeyDebug, input.KeyHighlight, input.KeyFilter)}, testDT)

	assert.False(t, s.HUDVisible())
	assert.False(t, s.HighlightVisible())
	assert.False(t, s.Bilinear())
	sp, _ := s.World().Sprite.Get(s.Player())
	assert.False(t, sp.Bilinear, "sprites follow the filter toggle")

	s.Step(input.Snapshot{Held: input.Keys(input.KeyDebug)}, testDT)
	assert.False(t, s.HUDVisible(), "holding does not retrigger")
}

func TestSession_PauseFreezesSimulation(t *testing.T) {
	s := createTestSession(t)
	s.Step(input.Snapshot{Pressed: input.Keys(input.KeyPause)}, testDT)
	require.Equal(t, state.StatePaused, s.State())

	idle(s, 30)

	tr, _, _ := playerState(t, s)
	assert.Equal(t, 200.0, tr.Pos.Y())
	assert.Equal(t, 0, s.Frame())

	s.Step(input.Snapshot{Pressed: input.Keys(input.KeyPause)}, testDT)
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 1, s.Frame())
}

func TestSession_ReplayIsDeterministic(t *testing.T) {
	frames := append(input.Hold(40, input.KeyRight, input.KeySprint), input.Hold(20, input.KeyJump)...)
	frames = append(frames, input.Hold(60, input.KeyLeft)...)

	live := createTestSession(t)
	rec := replay.NewRecorder(0, "platform")
	for _, in := range frames {
		rec.RecordFrame(in)
		live.Step(in, testDT)
	}

	replayed := createTestSession(t)
	replayer := replay.NewReplayer(rec.Data())
	for replayed.Advance(replayer, testDT) {
	}

	a, _, _ := playerState(t, live)
	b, _, _ := playerState(t, replayed)
	assert.Equal(t, a.Pos, b.Pos)
	assert.Equal(t, len(frames), replayed.Frame())
	assert.NotEqual(t, 0.0, a.Pos.X(), "the run actually moved")
}

func TestSession_Resize(t *testing.T) {
	s := createTestSession(t)

	s.Resize(100, 80)
	c := s.Render()

	assert.Equal(t, 100, c.W)
	assert.Equal(t, 80, c.H)
	assert.Equal(t, mgl64.Vec2{100, 80}, s.Camera().Viewport)

	s.Resize(0, 10)
	assert.Equal(t, 100, s.Render().W, "degenerate sizes are ignored")
	w, h := s.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 80, h)
}

func TestSession_RenderBuildsLight(t *testing.T) {
	s := createTestSession(t)
	assert.Nil(t, s.Light())

	c := s.Render()

	require.NotNil(t, s.Light())
	torch, _ := s.World().Transform.Get(s.Torch())
	tx, ty := camera.TileAt(torch.Pos.X(), torch.Pos.Y(), 32)
	assert.Equal(t, uint8(255), s.Light().Sample(tx, ty))

	differs := 0
	for _, p := range c.Pix {
		if p != s.clearColor {
			differs++
		}
	}
	assert.Positive(t, differs, "something was drawn")
}

func TestSession_HUDLines(t *testing.T) {
	s := createTestSession(t)
	s.Render()

	lines := s.HUDLines()

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "tile ")
	assert.Contains(t, lines[1], "pos 0.0,200.0")
	assert.Contains(t, lines[1], "ground false")
	assert.Equal(t, controlHint, lines[2])
}
