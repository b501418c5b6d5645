package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-adoption/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput         = errors.New("username and password are required")
	ErrNotFound             = errors.New("admin not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRegistrationDisabled = errors.New("registration is disabled")
	ErrPasswordTooLong      = fmt.Errorf("password must be at most %d bytes", MaxPasswordBytes)
)

// MaxPasswordBytes es el tope de bcrypt; más allá GenerateFromPassword falla.
const MaxPasswordBytes = 72

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	issuer auth.TokenIssuer

	allowRegistration bool
	now               func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewService(repo Repository, hasher auth.PasswordHasher, issuer auth.TokenIssuer, allowRegistration bool) *Service {
	return &Service{
		repo:              repo,
		hasher:            hasher,
		issuer:            issuer,
		allowRegistration: allowRegistration,
		now:               time.Now,
	}
}

// Register crea un admin. La password se hashea acá, antes de armar el registro.
func (s *Service) Register(ctx context.Context, username, password string) (AdminUser, error) {
	if !s.allowRegistration {
		return AdminUser{}, ErrRegistrationDisabled
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return AdminUser{}, ErrInvalidInput
	}
	if len(password) > MaxPasswordBytes {
		return AdminUser{}, ErrPasswordTooLong
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AdminUser{}, fmt.Errorf("register admin: %w", err)
	}

	u := AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return AdminUser{}, err
	}
	return u, nil
}

// Login devuelve un token firmado. Usuario inexistente y password incorrecta
// devuelven el mismo ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		// mismo costo de bcrypt que un usuario existente
		s.hasher.Compare(s.dummy(), password)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !s.hasher.Compare(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(u.ID)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return tok, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(uuid.NewString())
	})
	return s.dummyHash
}
