package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
)

const testTilePx = 32

// tileGrid is a sparse solid map for tests
type tileGrid map[[2]int]bool

func (g tileGrid) IsSolid(tx, ty int) bool { return g[[2]int{tx, ty}] }

func (g tileGrid) row(ty, x0, x1 int) tileGrid {
	for x := x0; x <= x1; x++ {
		g[[2]int{x, ty}] = true
	}
	return g
}

func (g tileGrid) column(tx, y0, y1 int) tileGrid {
	for y := y0; y <= y1; y++ {
		g[[2]int{tx, y}] = true
	}
	return g
}

func createTestPhysicsConfig() *config.PhysicsSettings {
	return &config.PhysicsSettings{Gravity: 1200, MaxFallSpeed: 3000}
}

func createTestBody(w *ecs.World, x, y, hw, hh float64) ecs.Entity {
	e := w.NewEntity()
	w.Transform.Add(e, ecs.NewTransform(x, y))
	w.Velocity.Add(e, ecs.Velocity{})
	w.Collider.Add(e, ecs.Collider{Half: mgl64.Vec2{hw, hh}})
	return e
}

func bodyState(t *testing.T, w *ecs.World, e ecs.Entity) (*ecs.Transform, *ecs.Velocity, *ecs.Collider) {
	t.Helper()
	tr, ok := w.Transform.Get(e)
	require.True(t, ok)
	v, ok := w.Velocity.Get(e)
	require.True(t, ok)
	c, ok := w.Collider.Get(e)
	require.True(t, ok)
	return tr, v, c
}

func TestPhysics_LandsOnFloor(t *testing.T) {
	w := ecs.NewWorld()
	floor := tileGrid{}.row(10, -15, 15)
	sys := NewPhysicsSystem(w, floor, testTilePx, createTestPhysicsConfig())
	e := createTestBody(w, 0, 200, 14, 20)

	for i := 0; i < 120; i++ {
		sys.Update(1.0 / 60)
	}

	tr, v, c := bodyState(t, w, e)
	assert.Equal(t, 300.0, tr.Pos.Y(), "bottom edge rests on the row-10 top at 320")
	assert.True(t, c.OnGround)
	assert.Equal(t, 0.0, v.V.Y())
	assert.Equal(t, 0.0, tr.Pos.X())
}

func TestPhysics_FallsWithoutGround(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewPhysicsSystem(w, tileGrid{}, testTilePx, createTestPhysicsConfig())
	e := createTestBody(w, 0, 0, 14, 20)

	sys.Update(0.5)

	tr, v, c := bodyState(t, w, e)
	assert.Equal(t, 600.0, v.V.Y())
	assert.Equal(t, 300.0, tr.Pos.Y())
	assert.False(t, c.OnGround)
}

func TestPhysics_MaxFallSpeed(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewPhysicsSystem(w, tileGrid{}, testTilePx, createTestPhysicsConfig())
	e := createTestBody(w, 0, 0, 14, 20)

	for i := 0; i < 10; i++ {
		sys.Update(1)
	}

	_, v, _ := bodyState(t, w, e)
	assert.Equal(t, 3000.0, v.V.Y())
}

func TestPhysics_WallStops(t *testing.T) {
	noGravity := &config.PhysicsSettings{Gravity: 0, MaxFallSpeed: 3000}

	tests := []struct {
		name  string
		wallX int
		velX  float64
		wantX float64
	}{
		{"moving right stops at tile left edge", 3, 600, 96 - 14},
		{"moving left stops at tile right edge", -3, -600, -64 + 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			walls := tileGrid{}.column(tt.wallX, -5, 5)
			sys := NewPhysicsSystem(w, walls, testTilePx, noGravity)
			e := createTestBody(w, 0, 16, 14, 14)
			v, _ := w.Velocity.Get(e)
			v.V[0] = tt.velX

			for i := 0; i < 30; i++ {
				sys.Update(1.0 / 60)
			}

			tr, v, _ := bodyState(t, w, e)
			assert.Equal(t, tt.wantX, tr.Pos.X())
			assert.Equal(t, 0.0, v.V.X())
		})
	}
}

func TestPhysics_CeilingStopsUpwardMotion(t *testing.T) {
	w := ecs.NewWorld()
	ceiling := tileGrid{}.row(-2, -3, 3)
	sys := NewPhysicsSystem(w, ceiling, testTilePx, &config.PhysicsSettings{Gravity: 0, MaxFallSpeed: 3000})
	e := createTestBody(w, 0, 0, 14, 20)
	v, _ := w.Velocity.Get(e)
	v.V[1] = -600

	sys.Update(1.0 / 30)

	tr, v, c := bodyState(t, w, e)
	// row -2 spans y -64..-32
	assert.Equal(t, -32.0+20, tr.Pos.Y())
	assert.Equal(t, 0.0, v.V.Y())
	assert.False(t, c.OnGround, "ceiling contact is not ground")
}

func TestPhysics_TouchingEdgeIsNotOverlap(t *testing.T) {
	w := ecs.NewWorld()
	walls := tileGrid{}.column(1, -5, 5)
	sys := NewPhysicsSystem(w, walls, testTilePx, &config.PhysicsSettings{Gravity: 0, MaxFallSpeed: 3000})
	// right edge exactly at x=32
	e := createTestBody(w, 18, 0, 14, 14)
	v, _ := w.Velocity.Get(e)
	v.V[1] = 60

	sys.Update(1.0 / 60)

	tr, v, c := bodyState(t, w, e)
	assert.Equal(t, 18.0, tr.Pos.X())
	assert.Equal(t, 60.0, v.V.Y(), "sliding along the wall keeps vertical speed")
	assert.False(t, c.OnGround)
}

func TestPhysics_EmbeddedBodySinglePass(t *testing.T) {
	w := ecs.NewWorld()
	solid := tileGrid{{2, 0}: true, {3, 0}: true}
	sys := NewPhysicsSystem(w, solid, testTilePx, &config.PhysicsSettings{Gravity: 0, MaxFallSpeed: 3000})
	// spans x 86..114 (tiles 2 and 3), y 2..30 (row 0)
	e := createTestBody(w, 100, 16, 14, 14)
	v, _ := w.Velocity.Get(e)
	v.V[0] = 60

	sys.Update(1.0 / 60)

	tr, v, _ := bodyState(t, w, e)
	// The first overlap in scan order (tile 2) pushes to its left edge,
	// after which tile 3 no longer overlaps.
	assert.Equal(t, 64.0-14, tr.Pos.X())
	assert.Equal(t, 0.0, v.V.X())
}

func TestPhysics_SkipsIncompleteAndDeadEntities(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewPhysicsSystem(w, tileGrid{}, testTilePx, createTestPhysicsConfig())

	dead := createTestBody(w, 0, 0, 4, 4)
	w.DestroyEntity(dead)

	noVel := w.NewEntity()
	w.Transform.Add(noVel, ecs.NewTransform(0, 0))
	w.Collider.Add(noVel, ecs.Collider{Half: mgl64.Vec2{4, 4}})

	noCollider := w.NewEntity()
	w.Transform.Add(noCollider, ecs.NewTransform(0, 0))
	w.Velocity.Add(noCollider, ecs.Velocity{})

	sys.Update(1)

	tr, _ := w.Transform.Get(dead)
	assert.Equal(t, 0.0, tr.Pos.Y(), "dead entity untouched")
	tr, _ = w.Transform.Get(noVel)
	assert.Equal(t, 0.0, tr.Pos.Y())
	v, _ := w.Velocity.Get(noCollider)
	assert.Equal(t, 0.0, v.V.Y(), "bodies without a collider get no gravity")
}
