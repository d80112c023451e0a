package booking

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Registry maps session tokens to live selections. Each selection is owned by
// one session; the lock only guards the map, not the selections themselves.
type Registry struct {
	mu     sync.RWMutex
	active map[string]*Selection
}

func NewRegistry() *Registry {
	return &Registry{active: make(map[string]*Selection)}
}

// Start creates a fresh selection and returns its session token.
func (r *Registry) Start() (string, *Selection) {
	token := newToken()
	sel := NewSelection()

	r.mu.Lock()
	r.active[token] = sel
	r.mu.Unlock()

	return token, sel
}

// Get returns the selection for token, or false when the session is unknown
// or already ended.
func (r *Registry) Get(token string) (*Selection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sel, ok := r.active[token]
	return sel, ok
}

// End removes the session. Safe to call for unknown tokens.
func (r *Registry) End(token string) {
	r.mu.Lock()
	delete(r.active, token)
	r.mu.Unlock()
}

func newToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
