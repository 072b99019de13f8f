package users

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Store.
type Memory struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemory returns an empty in-memory user store.
func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]User),
	}
}

func (m *Memory) User(_ context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}

	return user, nil
}

func (m *Memory) UserByUsername(_ context.Context, username string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (m *Memory) UserByProviderID(_ context.Context, providerID string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.ProviderID != "" && user.ProviderID == providerID {
			return user, nil
		}
	}

	return User{}, ErrNotFound
}

func (m *Memory) Create(_ context.Context, user User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = uuid.NewString()
	m.users[user.ID] = user

	return user, nil
}

func (m *Memory) Update(_ context.Context, id string, update Update) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.ProviderID != nil {
		user.ProviderID = *update.ProviderID
	}

	m.users[id] = user
	return user, nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}
