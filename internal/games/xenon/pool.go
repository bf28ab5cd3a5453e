package xenon

// entity is satisfied by pointers to types embedding Body.
type entity[T any] interface {
	*T
	IsAlive() bool
	Kill()
}

// Pool holds one entity family in insertion order.
// Dead entries stay in place until Compact, so callers may kill freely
// while iterating. A callback must not Add to the pool it is iterating.
type Pool[T any, P entity[T]] struct {
	items []T
}

// Add appends an entity.
func (p *Pool[T, P]) Add(v T) {
	p.items = append(p.items, v)
}

// ForEachAlive calls fn for every live entity in insertion order.
func (p *Pool[T, P]) ForEachAlive(fn func(*T)) {
	for i := range p.items {
		e := &p.items[i]
		if P(e).IsAlive() {
			fn(e)
		}
	}
}

// FindAlive returns the first live entity matching pred, or nil.
func (p *Pool[T, P]) FindAlive(pred func(*T) bool) *T {
	for i := range p.items {
		e := &p.items[i]
		if P(e).IsAlive() && pred(e) {
			return e
		}
	}
	return nil
}

// Compact drops dead entities, keeping survivors in order.
func (p *Pool[T, P]) Compact() {
	n := 0
	for i := range p.items {
		if P(&p.items[i]).IsAlive() {
			p.items[n] = p.items[i]
			n++
		}
	}
	clear(p.items[n:])
	p.items = p.items[:n]
}

// KillAll marks every entity dead.
func (p *Pool[T, P]) KillAll() {
	for i := range p.items {
		P(&p.items[i]).Kill()
	}
}

// Len returns the number of stored entities, dead or alive.
func (p *Pool[T, P]) Len() int {
	return len(p.items)
}

// Alive counts live entities.
func (p *Pool[T, P]) Alive() int {
	n := 0
	for i := range p.items {
		if P(&p.items[i]).IsAlive() {
			n++
		}
	}
	return n
}

// Clear removes everything.
func (p *Pool[T, P]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}
