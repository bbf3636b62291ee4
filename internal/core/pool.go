package core

// Pool is a fixed-capacity set of entities reused through their health flag.
// A pool is allocated once; spawning means reviving a dead slot.
type Pool []Entity

// NewPool allocates a pool of n dead entities.
func NewPool(n int) Pool {
	return make(Pool, n)
}

// FirstDead returns the first dead slot, or nil when every slot is in use.
func (p Pool) FirstDead() *Entity {
	for i := range p {
		if !p[i].IsAlive() {
			return &p[i]
		}
	}
	return nil
}

// CountAlive returns the number of alive slots.
func (p Pool) CountAlive() int {
	count := 0
	for i := range p {
		if p[i].IsAlive() {
			count++
		}
	}
	return count
}

// DestroyAll marks every slot dead.
func (p Pool) DestroyAll() {
	for i := range p {
		p[i].Destroy()
	}
}
