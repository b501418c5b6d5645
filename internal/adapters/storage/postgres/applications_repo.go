package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pet-adoption/internal/domain/applications"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, pet_id, pet_name,
			name, email, phone, message,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		a.ID,
		a.PetID,
		a.PetName,
		a.Name,
		a.Email,
		a.Phone,
		a.Message,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id, pet_name,
			name, email, phone, message,
			created_at
		FROM applications
		ORDER BY created_at DESC, seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		var a applications.Application
		if err := rows.Scan(
			&a.ID,
			&a.PetID,
			&a.PetName,
			&a.Name,
			&a.Email,
			&a.Phone,
			&a.Message,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.CreatedAt = a.CreatedAt.UTC()
		out = append(out, a)
	}

	return out, rows.Err()
}
