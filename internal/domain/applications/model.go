package applications

import "time"

// Application es una solicitud de adopción. Inmutable una vez guardada.
type Application struct {
	ID string

	// PetID es una referencia blanda: no se valida contra el catálogo.
	PetID   string
	PetName string

	Name    string
	Email   string
	Phone   string
	Message string

	CreatedAt time.Time
}
