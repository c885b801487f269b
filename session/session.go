// File: /session/session.go
package session

import (
	"sync"

	"cleanworld-api/client"
)

// Provider supplies the current signed-in user to components that need it.
// It is injected rather than read from a global so tests can swap it out.
type Provider interface {
	CurrentUser() *client.User
	SetCurrentUser(u *client.User)
	Clear()
}

// MemoryStore is the in-process Provider. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	user *client.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CurrentUser() *client.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

func (s *MemoryStore) SetCurrentUser(u *client.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	copied := *u
	s.user = &copied
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
