package applications

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) error
	// List devuelve todas las solicitudes, más nuevas primero.
	List(ctx context.Context) ([]Application, error)
}
