package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

const tokenBytes = 16

// Registry maps opaque session tokens to mess passes. Sessions are held
// in-process only: they survive until logout or process exit, never longer.
// Tokens are capabilities; nothing else looks them up.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]string)}
}

// Create issues a new random token bound to the given mess pass. Multiple
// concurrent sessions per mess pass are allowed.
func (r *Registry) Create(messPass string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	r.mu.Lock()
	r.sessions[token] = messPass
	r.mu.Unlock()
	return token, nil
}

// Resolve returns the mess pass bound to token. A missing or unknown token
// reports false rather than an error.
func (r *Registry) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	r.mu.RLock()
	messPass, ok := r.sessions[token]
	r.mu.RUnlock()
	return messPass, ok
}

// Destroy removes the session for token. Destroying an unknown token is a no-op.
func (r *Registry) Destroy(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
