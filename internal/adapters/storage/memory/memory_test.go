package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/admins"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetRepo_CRUD(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	p := pets.Pet{ID: "p1", Name: "Rex", Type: "Dog", AdoptionStatus: pets.StatusAvailable, CreatedAt: t0, UpdatedAt: t0}
	require.NoError(t, repo.Create(ctx, p))
	assert.Error(t, repo.Create(ctx, p), "duplicate id")

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	adopted := pets.StatusAdopted
	updated, err := repo.Update(ctx, "p1", pets.Patch{AdoptionStatus: &adopted}, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, pets.StatusAdopted, updated.AdoptionStatus)
	assert.Equal(t, "Rex", updated.Name)
	assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt)

	avail, err := repo.List(ctx, pets.ListFilter{Statuses: []pets.AdoptionStatus{pets.StatusAvailable}})
	require.NoError(t, err)
	assert.Empty(t, avail)

	deleted, err := repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, updated, deleted)

	_, err = repo.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, pets.ErrNotFound)
	_, err = repo.Update(ctx, "p1", pets.Patch{}, t0)
	assert.ErrorIs(t, err, pets.ErrNotFound)
	_, err = repo.Delete(ctx, "p1")
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_ListOrder(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "b", CreatedAt: t0.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "a", CreatedAt: t0.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "c", CreatedAt: t0}))

	items, err := repo.List(ctx, pets.ListFilter{})
	require.NoError(t, err)
	ids := []string{items[0].ID, items[1].ID, items[2].ID}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestApplicationRepo_NewestFirst(t *testing.T) {
	repo := NewApplicationRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, applications.Application{ID: "old", CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, applications.Application{ID: "new", CreatedAt: t0.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, applications.Application{ID: "tie", CreatedAt: t0.Add(time.Hour)}))
	assert.Error(t, repo.Create(ctx, applications.Application{}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "tie", items[0].ID)
	assert.Equal(t, "new", items[1].ID)
	assert.Equal(t, "old", items[2].ID)
}

func TestAdminRepo_ConcurrentRegisterSameUsername(t *testing.T) {
	repo := NewAdminRepo()
	ctx := context.Background()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ok    int
		taken int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, admins.AdminUser{ID: fmt.Sprintf("id-%d", i), Username: "admin"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, admins.ErrUsernameTaken) {
				taken++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, taken)

	_, err := repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, admins.ErrNotFound)
}
