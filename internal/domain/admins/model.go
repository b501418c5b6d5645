package admins

import "time"

// AdminUser es una cuenta de administración. Nunca guarda la password en claro.
type AdminUser struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
