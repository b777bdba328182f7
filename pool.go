package main

// Pool holds the entities that are currently alive, in the order they were
// added. The order only matters for drawing: later entities are drawn on top.
//
// A Pool with a capacity refuses new entities once it is full. It never evicts
// old entities to make room, the new ones are simply dropped.
type Pool[T any] struct {
	items    []T
	capacity int
}

// NewPool creates a pool that holds at most capacity entities. A capacity of 0
// means there is no limit.
func NewPool[T any](capacity int) Pool[T] {
	return Pool[T]{capacity: capacity}
}

func (p *Pool[T]) Add(e T) bool {
	if p.capacity > 0 && len(p.items) >= p.capacity {
		return false
	}
	p.items = append(p.items, e)
	Assert(p.capacity == 0 || len(p.items) <= p.capacity)
	return true
}

// RemoveWhere removes all entities for which remove returns true and keeps
// the relative order of the rest. It returns the number of removed entities.
func (p *Pool[T]) RemoveWhere(remove func(T) bool) int {
	n := 0
	for i := range p.items {
		if !remove(p.items[i]) {
			p.items[n] = p.items[i]
			n++
		}
	}
	removed := len(p.items) - n
	// Let go of references held in the tail so removed entities can be
	// collected.
	clear(p.items[n:])
	p.items = p.items[:n]
	return removed
}

func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

func (p *Pool[T]) Count() int {
	return len(p.items)
}

// All returns the live entities. The slice belongs to the pool and is only
// valid until the next call that modifies the pool.
func (p *Pool[T]) All() []T {
	return p.items
}
