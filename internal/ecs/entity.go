package ecs

import (
	"fmt"
	"math"
)

// MaxEntities is the maximum number of registry slots.
// Create panics once every slot below this bound is in use.
const MaxEntities = 1 << 24

// Entity is a generation-tagged handle to a registry slot.
// The zero value is never alive (generations start at 1).
type Entity struct {
	Index uint32
	Gen   uint32
}

// Nil is the zero Entity. It is never alive.
var Nil = Entity{}

// String returns a compact "index:gen" form for HUDs and logs
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.Index, e.Gen)
}

// Registry allocates entity handles and recycles their slots
type Registry struct {
	gen  []uint32 // current generation per slot
	free []uint32 // LIFO stack of reusable slots
	live int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Create returns a fresh entity.
// The most recently freed slot is reused first; otherwise a new slot with generation 1 is appended.
func (r *Registry) Create() Entity {
	r.live++
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		return Entity{Index: idx, Gen: r.gen[idx]}
	}
	if len(r.gen) >= MaxEntities {
		panic(fmt.Sprintf("ecs: entity limit %d exceeded", MaxEntities))
	}
	r.gen = append(r.gen, 1)
	return Entity{Index: uint32(len(r.gen) - 1), Gen: 1}
}

// Alive reports whether e still refers to its slot
func (r *Registry) Alive(e Entity) bool {
	if int(e.Index) >= len(r.gen) {
		return false
	}
	return r.gen[e.Index] == e.Gen
}

// Destroy invalidates e and frees its slot. Stale or unknown entities are ignored.
// Components are not touched: pools skip dead owners until the slot is reused.
func (r *Registry) Destroy(e Entity) {
	if !r.Alive(e) {
		return
	}
	r.live--
	r.gen[e.Index]++
	// A saturated slot is retired so its last handle can never match again.
	if r.gen[e.Index] == math.MaxUint32 {
		return
	}
	r.free = append(r.free, e.Index)
}

// Len returns the number of alive entities
func (r *Registry) Len() int {
	return r.live
}

// Cap returns the number of allocated slots, alive or not
func (r *Registry) Cap() int {
	return len(r.gen)
}

