package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
)

const petColumns = `
	id,
	name, type, breed, age, location, bio, image,
	gender, size, adoption_status,
	created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.Name,
		p.Type,
		p.Breed,
		p.Age,
		p.Location,
		p.Bio,
		p.Image,
		string(p.Gender),
		string(p.Size),
		string(p.AdoptionStatus),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	return scanPetRow(row)
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + petColumns + ` FROM pets WHERE TRUE`)

	args := []any{}
	argN := 1

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(s))
			argN++
		}
		sb.WriteString(" AND adoption_status IN (" + strings.Join(placeholders, ",") + ")")
	}

	if t := strings.TrimSpace(filter.Type); t != "" {
		sb.WriteString(fmt.Sprintf(" AND type = $%d", argN))
		args = append(args, t)
		argN++
	}

	// q: búsqueda simple en name + breed
	if strings.TrimSpace(filter.Query) != "" {
		sb.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR breed ILIKE $%d)", argN, argN))
		args = append(args, likePattern(filter.Query))
	}

	sb.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// Update es un solo statement: los campos nil del patch conservan el valor actual.
func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch, updatedAt time.Time) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET
			name            = COALESCE($2, name),
			type            = COALESCE($3, type),
			breed           = COALESCE($4, breed),
			age             = COALESCE($5, age),
			location        = COALESCE($6, location),
			bio             = COALESCE($7, bio),
			image           = COALESCE($8, image),
			gender          = COALESCE($9, gender),
			size            = COALESCE($10, size),
			adoption_status = COALESCE($11, adoption_status),
			updated_at      = $12
		WHERE id = $1
		RETURNING `+petColumns,
		id,
		nullString(patch.Name),
		nullString(patch.Type),
		nullString(patch.Breed),
		nullString(patch.Age),
		nullString(patch.Location),
		nullString(patch.Bio),
		nullString(patch.Image),
		nullString(patch.Gender),
		nullString(patch.Size),
		nullString(patch.AdoptionStatus),
		updatedAt,
	)
	return scanPetRow(row)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `DELETE FROM pets WHERE id = $1 RETURNING `+petColumns, id)
	return scanPetRow(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPetRow(row *sql.Row) (pets.Pet, error) {
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var gender, size, status string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Breed,
		&p.Age,
		&p.Location,
		&p.Bio,
		&p.Image,
		&gender,
		&size,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Gender = pets.Gender(gender)
	p.Size = pets.Size(size)
	p.AdoptionStatus = pets.AdoptionStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func nullString[T ~string](v *T) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*v), Valid: true}
}
