package sim

// Pool is a fixed-capacity arena of hazards. A slot is free when inactive.
// Slot indices are reused freely and are not exposed to callers.
type Pool struct {
	slots []Hazard
}

// NewPool creates a pool with the given number of slots.
func NewPool(capacity int) Pool {
	return Pool{slots: make([]Hazard, max(capacity, 0))}
}

// Cap returns the fixed number of slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Reset deactivates every slot.
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i] = Hazard{}
	}
}

// Acquire activates h in the first free slot.
// Returns false, leaving the pool untouched, when every slot is taken.
func (p *Pool) Acquire(h Hazard) bool {
	for i := range p.slots {
		if !p.slots[i].Active {
			h.Active = true
			p.slots[i] = h
			return true
		}
	}
	return false
}

// Len returns the number of active hazards.
func (p *Pool) Len() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Nth returns a copy of the n-th active hazard in slot order.
func (p *Pool) Nth(n int) (Hazard, bool) {
	if n < 0 {
		return Hazard{}, false
	}
	for i := range p.slots {
		if !p.slots[i].Active {
			continue
		}
		if n == 0 {
			return p.slots[i], true
		}
		n--
	}
	return Hazard{}, false
}

// each calls fn with a pointer to every active slot.
func (p *Pool) each(fn func(h *Hazard)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(&p.slots[i])
		}
	}
}
