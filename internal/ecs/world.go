package ecs

// World bundles the registry with one pool per component kind
type World struct {
	Registry *Registry

	// Components
	Transform *Pool[Transform]
	Velocity  *Pool[Velocity]
	Collider  *Pool[Collider]
	Light     *Pool[LightEmitter]
	Sprite    *Pool[Sprite]
	Player    *Pool[PlayerControl]
	Follow    *Pool[Follow]
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		Registry:  NewRegistry(),
		Transform: NewPool[Transform](),
		Velocity:  NewPool[Velocity](),
		Collider:  NewPool[Collider](),
		Light:     NewPool[LightEmitter](),
		Sprite:    NewPool[Sprite](),
		Player:    NewPool[PlayerControl](),
		Follow:    NewPool[Follow](),
	}
}

// NewEntity returns a new entity handle
func (w *World) NewEntity() Entity {
	return w.Registry.Create()
}

// Alive reports whether the entity handle is still valid
func (w *World) Alive(e Entity) bool {
	return w.Registry.Alive(e)
}

// DestroyEntity invalidates the handle. Components stay in their pools and are
// skipped by systems until the slot is reused.
func (w *World) DestroyEntity(e Entity) {
	w.Registry.Destroy(e)
}

// PurgeEntity removes every component of e and then destroys it
func (w *World) PurgeEntity(e Entity) {
	w.Transform.Remove(e)
	w.Velocity.Remove(e)
	w.Collider.Remove(e)
	w.Light.Remove(e)
	w.Sprite.Remove(e)
	w.Player.Remove(e)
	w.Follow.Remove(e)
	w.Registry.Destroy(e)
}

// PlayerConfig holds configuration for creating a player
type PlayerConfig struct {
	X, Y         float64 // spawn centre, pixels
	HalfW, HalfH float64
	MoveSpeed    float64
	JumpSpeed    float64
}

// CreatePlayer creates a controllable body with a collider
func (w *World) CreatePlayer(cfg PlayerConfig) Entity {
	id := w.NewEntity()

	w.Transform.Add(id, NewTransform(cfg.X, cfg.Y))
	w.Velocity.Add(id, Velocity{})
	c := Collider{}
	c.Half[0], c.Half[1] = cfg.HalfW, cfg.HalfH
	w.Collider.Add(id, c)
	w.Player.Add(id, PlayerControl{MoveSpeed: cfg.MoveSpeed, JumpSpeed: cfg.JumpSpeed})

	return id
}

// CreateLight creates a light emitter at (x, y)
func (w *World) CreateLight(x, y float64, radiusTiles int, intensity uint8) Entity {
	id := w.NewEntity()

	w.Transform.Add(id, NewTransform(x, y))
	w.Light.Add(id, LightEmitter{RadiusTiles: radiusTiles, Intensity: intensity})

	return id
}
