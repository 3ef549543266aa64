package user

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// memoryRepository keeps users in memory for the lifetime of the process.
type memoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
}

// NewMemoryRepository creates an empty in-memory user store.
func NewMemoryRepository() Repository {
	return &memoryRepository{byEmail: make(map[string]*User)}
}

func (r *memoryRepository) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return fmt.Errorf("user already exists: %s", u.Email)
	}
	r.byEmail[email] = u
	return nil
}

func (r *memoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("user not found: %s", email)
	}
	return u, nil
}
