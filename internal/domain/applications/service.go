package applications

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

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

// Submit valida y guarda. CreatedAt lo asigna el sistema.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Application, error) {
	a, err := Validate(in)
	if err != nil {
		return Application{}, err
	}

	a.ID = uuid.NewString()
	a.CreatedAt = s.now().UTC().Truncate(time.Microsecond)

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}
