package schedule

// indexPool hands out permutation indices in shuffled order, refilling itself
// whenever it runs dry.
//
// Draws are an incremental Fisher-Yates shuffle: each draw picks a uniform
// slot among the remaining ones, returns its value and moves the last
// remaining value into it. Only displaced slots are stored, so memory grows
// with the number of draws instead of with n!.
type indexPool struct {
	size      int64
	remaining int64
	displaced map[int64]int64
	legacy    bool
	rng       Rand
}

func newIndexPool(size int64, mode Mode, rng Rand) *indexPool {
	return &indexPool{
		size:      size,
		displaced: make(map[int64]int64),
		legacy:    mode == ModeLegacy,
		rng:       rng,
	}
}

func (p *indexPool) refill() {
	p.remaining = p.size
	clear(p.displaced)
}

func (p *indexPool) next() int64 {
	if p.remaining == 0 {
		p.refill()
	}

	j := p.rng.Int64N(p.remaining)
	last := p.remaining - 1
	v := p.at(j)
	if j != last {
		p.displaced[j] = p.at(last)
	}
	delete(p.displaced, last)
	p.remaining--

	if p.legacy {
		// Every slot holds n!. The draw still advances rng the same way
		// factorial mode does, but the value never varies.
		return p.size
	}
	return v
}

func (p *indexPool) at(i int64) int64 {
	if v, ok := p.displaced[i]; ok {
		return v
	}
	return i
}
