package system

import (
	"math"

	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
)

// TileQuery reports solidity of world tiles
type TileQuery interface {
	IsSolid(tx, ty int) bool
}

// PhysicsSystem integrates velocity and resolves AABBs against solid tiles.
// X is moved and resolved completely before Y.
type PhysicsSystem struct {
	world  *ecs.World
	tiles  TileQuery
	tilePx int
	config *config.PhysicsSettings
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(w *ecs.World, tiles TileQuery, tilePx int, cfg *config.PhysicsSettings) *PhysicsSystem {
	return &PhysicsSystem{
		world:  w,
		tiles:  tiles,
		tilePx: tilePx,
		config: cfg,
	}
}

// Update steps every live entity that has a Transform, Velocity and Collider
func (s *PhysicsSystem) Update(dt float64) {
	for e, col := range s.world.Collider.All() {
		if !s.world.Alive(e) {
			continue
		}
		tr, ok := s.world.Transform.Get(e)
		if !ok {
			continue
		}
		vel, ok := s.world.Velocity.Get(e)
		if !ok {
			continue
		}
		s.step(tr, vel, col, dt)
	}
}

func (s *PhysicsSystem) step(tr *ecs.Transform, vel *ecs.Velocity, col *ecs.Collider, dt float64) {
	// Apply gravity
	vy := vel.V.Y() + s.config.Gravity*dt
	vel.V[1] = math.Min(vy, s.config.MaxFallSpeed)

	s.resolveX(tr, vel, col, dt)
	s.resolveY(tr, vel, col, dt)
}

// resolveX moves horizontally and pushes out of every overlapping solid.
// With several overlaps the last one scanned wins.
func (s *PhysicsSystem) resolveX(tr *ecs.Transform, vel *ecs.Velocity, col *ecs.Collider, dt float64) {
	tr.Pos[0] += vel.V.X() * dt

	x0, y0, x1, y1 := s.scanRange(tr, col)
	tp := float64(s.tilePx)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if !s.tiles.IsSolid(tx, ty) || !s.overlaps(tr, col, tx, ty) {
				continue
			}
			left := float64(tx) * tp
			if vel.V.X() > 0 {
				tr.Pos[0] = left - col.Half.X()
			} else if vel.V.X() < 0 {
				tr.Pos[0] = left + tp + col.Half.X()
			}
			vel.V[0] = 0
		}
	}
}

// resolveY moves vertically; landing on a tile sets OnGround
func (s *PhysicsSystem) resolveY(tr *ecs.Transform, vel *ecs.Velocity, col *ecs.Collider, dt float64) {
	col.OnGround = false
	tr.Pos[1] += vel.V.Y() * dt

	x0, y0, x1, y1 := s.scanRange(tr, col)
	tp := float64(s.tilePx)
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			if !s.tiles.IsSolid(tx, ty) || !s.overlaps(tr, col, tx, ty) {
				continue
			}
			top := float64(ty) * tp
			if vel.V.Y() > 0 {
				// Hit ground
				tr.Pos[1] = top - col.Half.Y()
				col.OnGround = true
			} else if vel.V.Y() < 0 {
				// Hit ceiling
				tr.Pos[1] = top + tp + col.Half.Y()
			}
			vel.V[1] = 0
		}
	}
}

// scanRange returns the tiles touched by the AABB, grown by one tile each way
func (s *PhysicsSystem) scanRange(tr *ecs.Transform, col *ecs.Collider) (x0, y0, x1, y1 int) {
	tp := float64(s.tilePx)
	x0 = int(math.Floor((tr.Pos.X()-col.Half.X())/tp)) - 1
	x1 = int(math.Floor((tr.Pos.X()+col.Half.X())/tp)) + 1
	y0 = int(math.Floor((tr.Pos.Y()-col.Half.Y())/tp)) - 1
	y1 = int(math.Floor((tr.Pos.Y()+col.Half.Y())/tp)) + 1
	return x0, y0, x1, y1
}

// overlaps is a strict AABB test: touching edges do not overlap
func (s *PhysicsSystem) overlaps(tr *ecs.Transform, col *ecs.Collider, tx, ty int) bool {
	tp := float64(s.tilePx)
	ax0, ax1 := tr.Pos.X()-col.Half.X(), tr.Pos.X()+col.Half.X()
	ay0, ay1 := tr.Pos.Y()-col.Half.Y(), tr.Pos.Y()+col.Half.Y()
	bx0, by0 := float64(tx)*tp, float64(ty)*tp
	bx1, by1 := bx0+tp, by0+tp
	return !(ax1 <= bx0 || ax0 >= bx1 || ay1 <= by0 || ay0 >= by1)
}
