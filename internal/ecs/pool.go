package ecs

import "iter"

// absent marks a sparse slot with no dense entry
const absent = -1

// Pool is sparse-set storage for one component kind.
//
// Values live in a dense slice for cache-friendly iteration; sparse maps an
// entity index to its dense position. Owners are stored with their generation,
// so a handle that went stale after Registry.Destroy never matches.
type Pool[T any] struct {
	owners []Entity // dense position -> owner
	values []T      // dense position -> component
	sparse []int32  // entity index -> dense position, absent if none
}

// NewPool creates an empty pool
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// slot returns the dense position stored for e's index, or absent
func (p *Pool[T]) slot(e Entity) int {
	if int(e.Index) >= len(p.sparse) {
		return absent
	}
	di := int(p.sparse[e.Index])
	if di < 0 || di >= len(p.owners) || p.owners[di].Index != e.Index {
		return absent
	}
	return di
}

// Has reports whether e owns a component in this pool
func (p *Pool[T]) Has(e Entity) bool {
	di := p.slot(e)
	return di != absent && p.owners[di] == e
}

// Get returns a pointer to e's component.
// The pointer is invalidated by the next Add or Remove on this pool.
func (p *Pool[T]) Get(e Entity) (*T, bool) {
	di := p.slot(e)
	if di == absent || p.owners[di] != e {
		return nil, false
	}
	return &p.values[di], true
}

// Add inserts v for e, or overwrites in place when e's index already has a slot.
// A slot left behind by a destroyed handle with the same index is taken over.
func (p *Pool[T]) Add(e Entity, v T) *T {
	if di := p.slot(e); di != absent {
		p.owners[di] = e
		p.values[di] = v
		return &p.values[di]
	}
	p.ensureSparse(int(e.Index) + 1)
	p.sparse[e.Index] = int32(len(p.owners))
	p.owners = append(p.owners, e)
	p.values = append(p.values, v)
	return &p.values[len(p.values)-1]
}

// Remove deletes e's component by moving the last dense element into its place.
// Removing a component e does not own is a no-op.
func (p *Pool[T]) Remove(e Entity) {
	di := p.slot(e)
	if di == absent || p.owners[di] != e {
		return
	}
	last := len(p.owners) - 1
	if di != last {
		moved := p.owners[last]
		p.owners[di] = moved
		p.values[di] = p.values[last]
		p.sparse[moved.Index] = int32(di)
	}
	var zero T
	p.values[last] = zero
	p.owners = p.owners[:last]
	p.values = p.values[:last]
	p.sparse[e.Index] = absent
}

// Len returns the number of dense entries, including ones owned by dead entities
func (p *Pool[T]) Len() int {
	return len(p.owners)
}

// At returns the owner and component at dense position i
func (p *Pool[T]) At(i int) (Entity, *T) {
	return p.owners[i], &p.values[i]
}

// All yields (owner, component) pairs in dense order.
// Order is not stable across removals; removing during iteration may skip the moved element.
func (p *Pool[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < len(p.owners); i++ {
			if !yield(p.owners[i], &p.values[i]) {
				return
			}
		}
	}
}

// Clear drops every entry
func (p *Pool[T]) Clear() {
	clear(p.values)
	p.owners = p.owners[:0]
	p.values = p.values[:0]
	p.sparse = p.sparse[:0]
}

func (p *Pool[T]) ensureSparse(n int) {
	for len(p.sparse) < n {
		p.sparse = append(p.sparse, absent)
	}
}
