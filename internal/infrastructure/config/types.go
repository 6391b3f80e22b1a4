package config

// EngineConfig is the root config for engine.json
type EngineConfig struct {
	Display  DisplayConfig   `json:"display"`
	World    WorldConfig     `json:"world"`
	Physics  PhysicsSettings `json:"physics"`
	Player   PlayerSettings  `json:"player"`
	Lighting LightingConfig  `json:"lighting"`
	Camera   CameraConfig    `json:"camera"`
	Render   RenderConfig    `json:"render"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Resizable    bool   `json:"resizable"`
}

type WorldConfig struct {
	TilePx    int           `json:"tilePx"`    // world pixels per tile
	ChunkSize int           `json:"chunkSize"` // tiles per chunk edge
	Seed      int           `json:"seed"`
	Terrain   TerrainConfig `json:"terrain"`
	Stage     string        `json:"stage"` // stamped over the generated terrain at startup
}

// TerrainConfig shapes the sine height field
type TerrainConfig struct {
	BaseHeight float64 `json:"baseHeight"`
	Amp1       float64 `json:"amp1"`
	Freq1      float64 `json:"freq1"`
	Amp2       float64 `json:"amp2"`
	Freq2      float64 `json:"freq2"`
	DirtDepth  int     `json:"dirtDepth"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`      // px/s²
	MaxFallSpeed float64 `json:"maxFallSpeed"` // px/s
}

type PlayerSettings struct {
	Spawn            PointConfig `json:"spawn"`
	HalfWidth        float64     `json:"halfWidth"`
	HalfHeight       float64     `json:"halfHeight"`
	MoveSpeed        float64     `json:"moveSpeed"`
	JumpSpeed        float64     `json:"jumpSpeed"`
	Smoothing        float64     `json:"smoothing"` // exponential approach rate, 1/s
	SprintMultiplier float64     `json:"sprintMultiplier"`
	Sprite           string      `json:"sprite"`
}

type LightingConfig struct {
	Ambient         int         `json:"ambient"`
	Margin          int         `json:"margin"`
	DecayAir        int         `json:"decayAir"`
	DecaySolid      int         `json:"decaySolid"`
	OverlayMaxAlpha int         `json:"overlayMaxAlpha"`
	Torch           TorchConfig `json:"torch"`
}

type TorchConfig struct {
	Enabled   bool        `json:"enabled"`
	Radius    int         `json:"radius"`
	Intensity int         `json:"intensity"`
	Offset    PointConfig `json:"offset"`
}

type CameraConfig struct {
	Start      PointConfig `json:"start"`
	Zoom       float64     `json:"zoom"`
	ZoomMin    float64     `json:"zoomMin"`
	ZoomMax    float64     `json:"zoomMax"`
	ZoomStep   float64     `json:"zoomStep"`
	FollowRate float64     `json:"followRate"`
	CullMargin int         `json:"cullMargin"`
}

type RenderConfig struct {
	Bilinear       bool              `json:"bilinear"`
	Blend          bool              `json:"blend"`
	ClearColor     string            `json:"clearColor"`
	HighlightColor string            `json:"highlightColor"`
	HUDColor       string            `json:"hudColor"`
	Palette        map[string]string `json:"palette"` // tile id -> hex colour
	Tileset        TilesetConfig     `json:"tileset"`
}

type TilesetConfig struct {
	Path       string `json:"path"`
	TileWidth  int    `json:"tileWidth"`
	TileHeight int    `json:"tileHeight"`
}

type PointConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
