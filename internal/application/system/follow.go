package system

import "github.com/younwookim/tileforge/internal/ecs"

// FollowSystem snaps followers to their target's position plus offset.
// Followers of a dead or transform-less target stay where they are.
type FollowSystem struct {
	world *ecs.World
}

// NewFollowSystem creates a new follow system
func NewFollowSystem(w *ecs.World) *FollowSystem {
	return &FollowSystem{world: w}
}

// Update runs after physics so followers see this frame's positions
func (s *FollowSystem) Update() {
	for e, f := range s.world.Follow.All() {
		if !s.world.Alive(e) || !s.world.Alive(f.Target) {
			continue
		}
		target, ok := s.world.Transform.Get(f.Target)
		if !ok {
			continue
		}
		tr, ok := s.world.Transform.Get(e)
		if !ok {
			continue
		}
		tr.Pos = target.Pos.Add(f.Offset)
	}
}
