// Package session runs one sandbox world: simulation step and frame rendering.
package session

import (
	"io/fs"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/application/state"
	"github.com/younwookim/tileforge/internal/application/system"
	"github.com/younwookim/tileforge/internal/camera"
	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/infrastructure/asset"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
	"github.com/younwookim/tileforge/internal/input"
	"github.com/younwookim/tileforge/internal/lighting"
	"github.com/younwookim/tileforge/internal/raster"
	"github.com/younwookim/tileforge/internal/world"
)

// Platform rows stamped when no stage is configured
const (
	platformMinX    = -15
	platformMaxX    = 15
	platformSurface = 9
	platformBase    = 10
)

// PlatformStage names the built-in platform in recordings and logs
const PlatformStage = "platform"

var playerFallback = raster.RGB(230, 200, 90)

// Options configures a new session
type Options struct {
	Config *config.EngineConfig // nil selects config.Default
	Stage  *config.StageConfig  // nil stamps the built-in platform
	Assets fs.FS                // sprite and tileset source; nil skips images
	Logger *slog.Logger         // nil selects slog.Default
}

// Session owns the entity world, tile world, camera and frame buffer
type Session struct {
	cfg   *config.EngineConfig
	log   *slog.Logger
	state state.GameState

	world  *ecs.World
	tiles  *world.World
	camera *camera.Camera
	canvas *raster.Canvas
	light  *lighting.Grid

	player ecs.Entity
	torch  ecs.Entity

	players *system.PlayerSystem
	physics *system.PhysicsSystem
	follow  *system.FollowSystem
	edits   *system.EditSystem
	render  *system.RenderSystem

	lightParams lighting.Params
	sources     []lighting.Source

	clearColor     raster.Color
	highlightColor raster.Color
	hudColor       raster.Color

	showHUD       bool
	showHighlight bool
	cursor        [2]int
	frame         int
}

// New builds the demo scene: terrain, platform or stage, player and torch
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid engine config")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	palette, err := cfg.Render.ParsePalette()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:            cfg,
		log:            log,
		state:          state.StatePlaying,
		world:          ecs.NewWorld(),
		tiles:          world.New(cfg.World.ChunkSize, terrainFrom(cfg.World)),
		canvas:         raster.NewCanvas(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		lightParams:    lightParamsFrom(cfg.Lighting),
		clearColor:     config.ColorOr(cfg.Render.ClearColor, raster.RGB(14, 15, 18)),
		highlightColor: config.ColorOr(cfg.Render.HighlightColor, raster.RGBA(255, 240, 140, 220)),
		hudColor:       config.ColorOr(cfg.Render.HUDColor, raster.RGBA(240, 240, 245, 240)),
		showHUD:        true,
		showHighlight:  true,
	}

	s.camera = camera.New(
		mgl64.Vec2{cfg.Camera.Start.X, cfg.Camera.Start.Y},
		mgl64.Vec2{float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight)},
	)
	s.camera.Zoom = cfg.Camera.Zoom

	s.players = system.NewPlayerSystem(s.world, &cfg.Player)
	s.physics = system.NewPhysicsSystem(s.world, s.tiles, cfg.World.TilePx, &cfg.Physics)
	s.follow = system.NewFollowSystem(s.world)
	s.edits = system.NewEditSystem(s.tiles)

	var images *asset.Loader
	if opts.Assets != nil {
		images = asset.NewLoader(opts.Assets, log)
	}

	var tileset *raster.Tileset
	if images != nil {
		if img, ok := images.LoadImage(cfg.Render.Tileset.Path); ok {
			tileset = raster.NewTileset(img, cfg.Render.Tileset.TileWidth, cfg.Render.Tileset.TileHeight)
		}
	}
	s.render = system.NewRenderSystem(cfg.World.TilePx, cfg.Camera.CullMargin, palette, tileset)
	s.render.Bilinear = cfg.Render.Bilinear
	s.render.Blend = cfg.Render.Blend

	stamped := s.stampStage(opts.Stage)
	s.spawnPlayer(images)
	s.spawnTorch()

	log.Info("session ready",
		"seed", cfg.World.Seed,
		"stage", stageName(opts.Stage),
		"tiles", stamped,
		"tileset", tileset.Usable(),
	)
	return s, nil
}

func terrainFrom(wc config.WorldConfig) world.Generator {
	t := wc.Terrain
	return world.SineTerrain{
		Seed:       wc.Seed,
		BaseHeight: t.BaseHeight,
		Amp1:       t.Amp1,
		Freq1:      t.Freq1,
		Amp2:       t.Amp2,
		Freq2:      t.Freq2,
		DirtDepth:  t.DirtDepth,
	}
}

func lightParamsFrom(lc config.LightingConfig) lighting.Params {
	return lighting.Params{
		Ambient:    uint8(lc.Ambient),
		Margin:     lc.Margin,
		DecayAir:   uint8(lc.DecayAir),
		DecaySolid: uint8(lc.DecaySolid),
		MaxAlpha:   lc.OverlayMaxAlpha,
	}
}

func stageName(st *config.StageConfig) string {
	if st == nil {
		return PlatformStage
	}
	return st.ID
}

func (s *Session) stampStage(st *config.StageConfig) int {
	if st != nil {
		return system.LoadStage(st, s.tiles, s.world)
	}
	n := 0
	for x := platformMinX; x <= platformMaxX; x++ {
		s.tiles.Set(x, platformBase, world.Stone)
		s.tiles.Set(x, platformSurface, world.Grass)
		n += 2
	}
	return n
}

func (s *Session) spawnPlayer(images *asset.Loader) {
	pc := s.cfg.Player
	s.player = s.world.CreatePlayer(ecs.PlayerConfig{
		X:         pc.Spawn.X,
		Y:         pc.Spawn.Y,
		HalfW:     pc.HalfWidth,
		HalfH:     pc.HalfHeight,
		MoveSpeed: pc.MoveSpeed,
		JumpSpeed: pc.JumpSpeed,
	})

	var img *raster.Image
	if images != nil {
		img, _ = images.LoadImage(pc.Sprite)
	}
	if img == nil {
		img = solidImage(int(2*pc.HalfWidth), int(2*pc.HalfHeight), playerFallback)
	}
	s.world.Sprite.Add(s.player, ecs.Sprite{
		Image:    img,
		Bilinear: s.cfg.Render.Bilinear,
		Blend:    true,
		Tint:     raster.White,
	})
}

func (s *Session) spawnTorch() {
	tc := s.cfg.Lighting.Torch
	if !tc.Enabled {
		s.torch = ecs.Nil
		return
	}
	tr, _ := s.world.Transform.Get(s.player)
	offset := mgl64.Vec2{tc.Offset.X, tc.Offset.Y}
	pos := tr.Pos.Add(offset)

	s.torch = s.world.CreateLight(pos.X(), pos.Y(), tc.Radius, uint8(tc.Intensity))
	s.world.Follow.Add(s.torch, ecs.Follow{Target: s.player, Offset: offset})
}

func solidImage(w, h int, col raster.Color) *raster.Image {
	img := raster.NewImage(max(w, 1), max(h, 1))
	for i := range img.Pix {
		img.Pix[i] = col
	}
	return img
}

// Step advances one frame: toggles, zoom, tile edits, movement, physics,
// followers and the camera. Only toggles run while paused.
func (s *Session) Step(in input.Snapshot, dt float64) {
	s.handleToggles(in)
	if !s.state.Simulating() {
		return
	}

	if in.Wheel != 0 {
		cc := s.cfg.Camera
		s.camera.ZoomBy(in.Wheel, cc.ZoomStep, cc.ZoomMin, cc.ZoomMax)
	}

	s.updateCursor(in)
	s.queueEdits(in)
	if n := s.edits.Apply(); n > 0 {
		s.log.Debug("tiles edited", "count", n, "tx", s.cursor[0], "ty", s.cursor[1])
	}

	s.players.Update(in, dt)
	s.physics.Update(dt)
	s.follow.Update()

	if tr, ok := s.world.Transform.Get(s.player); ok {
		s.camera.Follow(tr.Pos, s.cfg.Camera.FollowRate, dt)
	}
	s.frame++
}

func (s *Session) handleToggles(in input.Snapshot) {
	if in.JustPressed(input.KeyPause) {
		s.state = s.state.TogglePause()
		s.log.Info("state changed", "state", s.state)
	}
	if in.JustPressed(input.KeyDebug) {
		s.showHUD = !s.showHUD
	}
	if in.JustPressed(input.KeyHighlight) {
		s.showHighlight = !s.showHighlight
	}
	if in.JustPressed(input.KeyFilter) {
		s.render.Bilinear = !s.render.Bilinear
		for _, sp := range s.world.Sprite.All() {
			sp.Bilinear = s.render.Bilinear
		}
	}
}

func (s *Session) updateCursor(in input.Snapshot) {
	p := s.camera.ScreenToWorld(float64(in.CursorX), float64(in.CursorY))
	tx, ty := camera.TileAt(p.X(), p.Y(), s.cfg.World.TilePx)
	s.cursor = [2]int{tx, ty}
}

func (s *Session) queueEdits(in input.Snapshot) {
	tx, ty := s.cursor[0], s.cursor[1]
	if in.Clicked(input.MouseLeft) {
		s.edits.Queue(system.DigIntent{TX: tx, TY: ty})
	}
	if in.Clicked(input.MouseRight) {
		s.edits.Queue(system.PlaceIntent{TX: tx, TY: ty, Tile: world.Dirt})
	}
}

// Advance polls p once and steps with its snapshot.
// It returns false without stepping once p is exhausted.
func (s *Session) Advance(p input.Provider, dt float64) bool {
	in, ok := p.Poll()
	if !ok {
		return false
	}
	s.Step(in, dt)
	return true
}

// Resize reallocates the frame buffer and viewport
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == s.canvas.W && h == s.canvas.H) {
		return
	}
	s.canvas.Resize(w, h)
	s.camera.Viewport = mgl64.Vec2{float64(w), float64(h)}
	s.log.Debug("frame resized", "w", w, "h", h)
}

// Size returns the frame buffer size in pixels
func (s *Session) Size() (int, int) { return s.canvas.W, s.canvas.H }

// World returns the entity world
func (s *Session) World() *ecs.World { return s.world }

// Tiles returns the tile world
func (s *Session) Tiles() *world.World { return s.tiles }

// Camera returns the session camera
func (s *Session) Camera() *camera.Camera { return s.camera }

// Player returns the player entity
func (s *Session) Player() ecs.Entity { return s.player }

// Torch returns the torch entity, or ecs.Nil when the torch is disabled
func (s *Session) Torch() ecs.Entity { return s.torch }

// State returns the current game state
func (s *Session) State() state.GameState { return s.state }

// Frame returns the number of simulated frames
func (s *Session) Frame() int { return s.frame }

// Cursor returns the tile under the cursor as of the last simulated frame
func (s *Session) Cursor() (int, int) { return s.cursor[0], s.cursor[1] }

// Light returns the grid built by the last Render, or nil before the first
func (s *Session) Light() *lighting.Grid { return s.light }

// HUDVisible reports whether the debug HUD is drawn
func (s *Session) HUDVisible() bool { return s.showHUD }

// HighlightVisible reports whether the cursor tile outline is drawn
func (s *Session) HighlightVisible() bool { return s.showHighlight }

// Bilinear reports whether tiles and sprites are filtered
func (s *Session) Bilinear() bool { return s.render.Bilinear }
