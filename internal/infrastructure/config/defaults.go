package config

import "github.com/rotisserie/eris"

// Default returns the built-in engine configuration
func Default() *EngineConfig {
	return &EngineConfig{
		Display: DisplayConfig{
			Title:        "tileforge sandbox",
			ScreenWidth:  1200,
			ScreenHeight: 720,
			Scale:        1,
			Framerate:    60,
			Resizable:    true,
		},
		World: WorldConfig{
			TilePx:    32,
			ChunkSize: 32,
			Terrain: TerrainConfig{
				BaseHeight: 18,
				Amp1:       4,
				Freq1:      0.08,
				Amp2:       10,
				Freq2:      0.02,
				DirtDepth:  10,
			},
		},
		Physics: PhysicsSettings{Gravity: 1200, MaxFallSpeed: 3000},
		Player: PlayerSettings{
			Spawn:            PointConfig{X: 0, Y: 200},
			HalfWidth:        14,
			HalfHeight:       20,
			MoveSpeed:        360,
			JumpSpeed:        640,
			Smoothing:        18,
			SprintMultiplier: 1.6,
		},
		Lighting: LightingConfig{
			Ambient:         35,
			Margin:          4,
			DecayAir:        12,
			DecaySolid:      18,
			OverlayMaxAlpha: 220,
			Torch: TorchConfig{
				Enabled:   true,
				Radius:    12,
				Intensity: 255,
				Offset:    PointConfig{X: 0, Y: -20},
			},
		},
		Camera: CameraConfig{
			Start:      PointConfig{X: 0, Y: 150},
			Zoom:       1,
			ZoomMin:    0.35,
			ZoomMax:    4,
			ZoomStep:   1.15,
			FollowRate: 6,
			CullMargin: 2,
		},
		Render: RenderConfig{
			Bilinear:       true,
			Blend:          true,
			ClearColor:     "#0e0f12",
			HighlightColor: "#fff08cdc",
			HUDColor:       "#f0f0f5f0",
			Palette: map[string]string{
				"1": "#5c4838",
				"2": "#6e6e78",
				"4": "#46a050",
			},
			Tileset: TilesetConfig{TileWidth: 16, TileHeight: 16},
		},
	}
}

// Validate rejects values the engine cannot run with and fills optional ones
func (c *EngineConfig) Validate() error {
	if c.World.TilePx <= 0 {
		return eris.Errorf("world.tilePx must be positive, got %d", c.World.TilePx)
	}
	if c.World.ChunkSize <= 0 {
		c.World.ChunkSize = 32
	}
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return eris.Errorf("display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
	if c.Camera.ZoomMin <= 0 || c.Camera.ZoomMax < c.Camera.ZoomMin {
		return eris.Errorf("camera zoom bounds invalid: [%g, %g]", c.Camera.ZoomMin, c.Camera.ZoomMax)
	}
	if c.Camera.Zoom < c.Camera.ZoomMin || c.Camera.Zoom > c.Camera.ZoomMax {
		c.Camera.Zoom = min(max(c.Camera.Zoom, c.Camera.ZoomMin), c.Camera.ZoomMax)
	}
	if c.Camera.ZoomStep <= 1 {
		c.Camera.ZoomStep = 1.15
	}
	if c.Player.HalfWidth <= 0 || c.Player.HalfHeight <= 0 {
		return eris.New("player half extents must be positive")
	}
	if c.Player.SprintMultiplier <= 0 {
		c.Player.SprintMultiplier = 1
	}
	if c.Physics.MaxFallSpeed <= 0 {
		return eris.New("physics.maxFallSpeed must be positive")
	}
	for name, v := range map[string]int{
		"lighting.ambient":         c.Lighting.Ambient,
		"lighting.decayAir":        c.Lighting.DecayAir,
		"lighting.decaySolid":      c.Lighting.DecaySolid,
		"lighting.torch.intensity": c.Lighting.Torch.Intensity,
	} {
		if v < 0 || v > 255 {
			return eris.Errorf("%s must be in [0, 255], got %d", name, v)
		}
	}
	if c.Lighting.DecayAir == 0 || c.Lighting.DecaySolid == 0 {
		return eris.New("lighting decay must be at least 1")
	}
	if _, err := c.Render.ParsePalette(); err != nil {
		return err
	}
	return nil
}
