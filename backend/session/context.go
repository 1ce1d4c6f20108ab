package session

import (
	"sync"

	"portal/backend/store"
)

// Context holds the current user for the whole process. It is built once at
// startup from the persisted record and injected into the controllers that
// need it; login, logout and profile updates all go through its setters so
// the file and the in-memory copy never drift apart.
type Context struct {
	mu      sync.RWMutex
	store   *Store
	current *store.Account
}

func NewContext(s *Store) *Context {
	ctx := &Context{store: s}
	if acc, ok := s.Current(); ok {
		ctx.current = acc
	}
	return ctx
}

// User returns the logged-in account, or ok=false.
func (c *Context) User() (*store.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil, false
	}
	acc := *c.current
	return &acc, true
}

// SetUser records a successful login or a profile update, in memory and in
// the session file together.
func (c *Context) SetUser(acc *store.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Set(acc); err != nil {
		return err
	}
	cp := *acc
	c.current = &cp
	return nil
}

// Logout clears both copies.
func (c *Context) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.current = nil
	return nil
}
