package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption/internal/domain/applications"
)

// applicationRepo es append-only.
type applicationRepo struct {
	mu    sync.RWMutex
	items []applications.Application
}

func NewApplicationRepo() applications.Repository {
	return &applicationRepo{}
}

func (r *applicationRepo) Create(ctx context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("application id required")
	}
	r.items = append(r.items, a)
	return nil
}

func (r *applicationRepo) List(ctx context.Context) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// copia en orden inverso de inserción; el sort estable respeta eso en empates
	out := make([]applications.Application, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
