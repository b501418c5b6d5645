package auth

// Claims representa la información extraída del token.
type Claims struct {
	// UserID es el subject del token (id del AdminUser).
	UserID string
}
