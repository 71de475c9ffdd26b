package memory

import "sync"

// Pool is a typed object pool. Get never fails: a miss allocates a
// fresh object through the constructor.
type Pool[T any] struct {
	p *sync.Pool
}

// NewPool creates a pool with a given constructor.
func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

// Get retrieves an object from the pool. Returned objects may carry
// stale field values; callers reinitialize before use.
func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put returns an object to the pool.
func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}

// FixedPool is a preallocated slab of exactly cap objects threaded
// onto a freelist. Get returns nil once the slab is exhausted; the
// caller sees that as allocation failure. Objects returned with Put
// become available to Get again.
type FixedPool[T any] struct {
	slab []T
	free []*T
}

// NewFixedPool allocates the slab up front. Capacity must be positive.
func NewFixedPool[T any](capacity int) *FixedPool[T] {
	if capacity <= 0 {
		panic("memory.FixedPool: capacity must be positive")
	}
	fp := &FixedPool[T]{
		slab: make([]T, capacity),
		free: make([]*T, capacity),
	}
	for i := range fp.slab {
		fp.free[i] = &fp.slab[i]
	}
	return fp
}

// Get pops an object off the freelist, or returns nil when the slab
// is exhausted.
func (p *FixedPool[T]) Get() *T {
	if len(p.free) == 0 {
		return nil
	}
	v := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return v
}

// Put pushes an object back onto the freelist. The object must have
// come from this pool's slab.
func (p *FixedPool[T]) Put(v *T) {
	p.free = append(p.free, v)
}

// Cap reports the slab capacity.
func (p *FixedPool[T]) Cap() int { return len(p.slab) }

// Free reports how many objects are currently available.
func (p *FixedPool[T]) Free() int { return len(p.free) }
