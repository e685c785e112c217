package memory

import "sync"

// cascade acciones a ejecutar tras borrar una fila, equivalentes a los ON DELETE del
// esquema PostgreSQL (CASCADE o SET NULL).
type cascade struct {
	mu    sync.RWMutex
	hooks []func(id int64)
}

func (c *cascade) onDelete(fn func(id int64)) {
	c.mu.Lock()
	c.hooks = append(c.hooks, fn)
	c.mu.Unlock()
}

func (c *cascade) deleted(id int64) {
	c.mu.RLock()
	hooks := c.hooks
	c.mu.RUnlock()
	for _, fn := range hooks {
		fn(id)
	}
}
