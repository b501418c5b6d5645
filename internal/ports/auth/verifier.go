package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
// Cualquier token faltante, malformado, vencido o mal firmado es un error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens bearer para un usuario ya autenticado.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// PasswordHasher es el primitivo de hash de passwords (one-way, con salt).
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Compare(hash, raw string) bool
}
