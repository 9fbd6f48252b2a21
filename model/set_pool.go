package model

import "sync"

// cellSetPool recycles live-cell sets between generations
type cellSetPool struct {
	pool sync.Pool
}

func newCellSetPool() *cellSetPool {
	return &cellSetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[Coord]struct{})
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *cellSetPool) Get() map[Coord]struct{} {
	return p.pool.Get().(map[Coord]struct{})
}

// Put returns a set to the pool, clearing its contents
func (p *cellSetPool) Put(set map[Coord]struct{}) {
	if set == nil {
		return
	}
	clear(set)
	p.pool.Put(set)
}
