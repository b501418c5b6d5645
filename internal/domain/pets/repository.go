package pets

import (
	"context"
	"strings"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	// Update aplica el patch de forma atómica y devuelve el registro actualizado.
	Update(ctx context.Context, id string, patch Patch, updatedAt time.Time) (Pet, error)
	// Delete borra y devuelve el registro borrado.
	Delete(ctx context.Context, id string) (Pet, error)
}

type ListFilter struct {
	// Statuses vacío = todos.
	Statuses []AdoptionStatus
	// Type compara exacto, con mayúsculas.
	Type string
	// Query busca en name/breed (case-insensitive).
	Query string
}

// Matches se usa en stores que filtran en memoria.
func (f ListFilter) Matches(p Pet) bool {
	if len(f.Statuses) > 0 {
		ok := false
		for _, s := range f.Statuses {
			if p.AdoptionStatus == s {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if t := strings.TrimSpace(f.Type); t != "" && p.Type != t {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Breed), q) {
			return false
		}
	}
	return true
}
