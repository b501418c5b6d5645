package admins

import "context"

type Repository interface {
	// Create devuelve ErrUsernameTaken si el username ya existe.
	Create(ctx context.Context, u AdminUser) error
	// GetByUsername devuelve ErrNotFound si no existe.
	GetByUsername(ctx context.Context, username string) (AdminUser, error)
}
