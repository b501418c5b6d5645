package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-adoption/internal/domain/admins"
)

type adminRepo struct {
	mu         sync.RWMutex
	byUsername map[string]admins.AdminUser
}

func NewAdminRepo() admins.Repository {
	return &adminRepo{
		byUsername: make(map[string]admins.AdminUser),
	}
}

// Create chequea y escribe bajo el mismo lock: dos registros concurrentes
// con el mismo username no pueden ganar ambos.
func (r *adminRepo) Create(ctx context.Context, u admins.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("admin id required")
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return admins.ErrUsernameTaken
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (admins.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return admins.AdminUser{}, admins.ErrNotFound
	}
	return u, nil
}
