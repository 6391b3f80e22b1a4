package ecs

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/tileforge/internal/raster"
)

// Transform is an entity's world-space placement (pixels, radians)
type Transform struct {
	Pos   mgl64.Vec2
	Rot   float64
	Scale mgl64.Vec2
}

// NewTransform returns a transform at pos with unit scale
func NewTransform(x, y float64) Transform {
	return Transform{Pos: mgl64.Vec2{x, y}, Scale: mgl64.Vec2{1, 1}}
}

// Velocity is in pixels per second
type Velocity struct {
	V mgl64.Vec2
}

// Collider is an AABB centred on the transform position.
// OnGround is recomputed by every physics step.
type Collider struct {
	Half     mgl64.Vec2
	OnGround bool
}

// LightEmitter seeds the light grid at the owner's tile
type LightEmitter struct {
	RadiusTiles int
	Intensity   uint8
}

// Sprite draws a sub-rectangle of an externally owned image.
// SW/SH <= 0 selects the whole image.
type Sprite struct {
	Image    *raster.Image
	SX, SY   int
	SW, SH   int
	Bilinear bool
	Blend    bool
	Tint     raster.Color
}

// PlayerControl marks an entity driven by the input snapshot
type PlayerControl struct {
	MoveSpeed float64 // px/s
	JumpSpeed float64 // px/s
}

// Follow pins an entity to another entity's position plus an offset
type Follow struct {
	Target Entity
	Offset mgl64.Vec2
}
