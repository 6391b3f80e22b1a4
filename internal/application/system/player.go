package system

import (
	"math"

	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
	"github.com/younwookim/tileforge/internal/input"
)

// PlayerSystem turns the input snapshot into player velocity
type PlayerSystem struct {
	world  *ecs.World
	config *config.PlayerSettings
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(w *ecs.World, cfg *config.PlayerSettings) *PlayerSystem {
	return &PlayerSystem{world: w, config: cfg}
}

// Update drives every live entity with PlayerControl, Velocity and Collider
func (s *PlayerSystem) Update(in input.Snapshot, dt float64) {
	for e, pc := range s.world.Player.All() {
		if !s.world.Alive(e) {
			continue
		}
		vel, ok := s.world.Velocity.Get(e)
		if !ok {
			continue
		}
		col, ok := s.world.Collider.Get(e)
		if !ok {
			continue
		}

		s.handleMovement(pc, vel, in, dt)
		s.handleJump(pc, vel, col, in)
	}
}

// handleMovement eases horizontal velocity toward the input target
func (s *PlayerSystem) handleMovement(pc *ecs.PlayerControl, vel *ecs.Velocity, in input.Snapshot, dt float64) {
	speed := pc.MoveSpeed
	if in.Down(input.KeySprint) {
		speed *= s.config.SprintMultiplier
	}
	target := in.Axis(input.KeyLeft, input.KeyRight) * speed

	t := 1 - math.Exp(-s.config.Smoothing*dt)
	vel.V[0] += (target - vel.V.X()) * t
}

// handleJump fires on the press edge only, and only from the ground
func (s *PlayerSystem) handleJump(pc *ecs.PlayerControl, vel *ecs.Velocity, col *ecs.Collider, in input.Snapshot) {
	if !in.JustPressed(input.KeyJump) || !col.OnGround {
		return
	}
	vel.V[1] = -pc.JumpSpeed
	col.OnGround = false
}
