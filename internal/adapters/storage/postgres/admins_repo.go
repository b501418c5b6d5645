package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption/internal/domain/admins"
)

type AdminsRepo struct {
	db *sql.DB
}

func NewAdminsRepo(db *sql.DB) *AdminsRepo {
	return &AdminsRepo{db: db}
}

// Create delega la unicidad al índice UNIQUE de username.
func (r *AdminsRepo) Create(ctx context.Context, u admins.AdminUser) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_users (id, username, password_hash, created_at)
		VALUES ($1,$2,$3,$4)
	`, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return admins.ErrUsernameTaken
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (r *AdminsRepo) GetByUsername(ctx context.Context, username string) (admins.AdminUser, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`, username)

	var u admins.AdminUser
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return admins.AdminUser{}, admins.ErrNotFound
		}
		return admins.AdminUser{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
