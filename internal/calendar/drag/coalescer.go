package drag

import "sync"

// Coalescer guarda sólo la última escritura pendiente (last-value-wins).
// El valor cero está listo para usarse.
type Coalescer struct {
	mu      sync.Mutex
	pending *Update
	dropped int
}

func (c *Coalescer) Put(u Update) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		c.dropped++
	}
	c.pending = &u
}

func (c *Coalescer) Take() (Update, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return Update{}, false
	}
	u := *c.pending
	c.pending = nil
	return u, true
}

func (c *Coalescer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// Dropped cuenta las escrituras reemplazadas antes de salir.
func (c *Coalescer) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}
