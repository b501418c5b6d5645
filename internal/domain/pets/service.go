package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// timestamp normalizado: UTC y precisión de microsegundos (lo que guarda Postgres).
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p, err := ValidateCreate(in)
	if err != nil {
		return Pet{}, err
	}

	now := s.timestamp()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if err := ValidateID(id); err != nil {
		return Pet{}, err
	}
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// ListAvailable es el listado público: solo Available.
func (s *Service) ListAvailable(ctx context.Context, petType, query string) ([]Pet, error) {
	return s.repo.List(ctx, ListFilter{
		Statuses: []AdoptionStatus{StatusAvailable},
		Type:     strings.TrimSpace(petType),
		Query:    strings.TrimSpace(query),
	})
}

// ListAll es el listado de admin; statuses vacío = todos.
func (s *Service) ListAll(ctx context.Context, statuses []AdoptionStatus) ([]Pet, error) {
	for _, st := range statuses {
		if !st.Valid() {
			return nil, ErrInvalidInput
		}
	}
	return s.repo.List(ctx, ListFilter{Statuses: statuses})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if err := ValidateID(id); err != nil {
		return Pet{}, err
	}
	patch, err := ValidatePatch(in)
	if err != nil {
		return Pet{}, err
	}
	return s.repo.Update(ctx, strings.TrimSpace(id), patch, s.timestamp())
}

func (s *Service) Delete(ctx context.Context, id string) (Pet, error) {
	if err := ValidateID(id); err != nil {
		return Pet{}, err
	}
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}
