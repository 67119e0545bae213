package postgres

import (
	"context"
	"database/sql"

	"pet-directory/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	// id BIGINT GENERATED ALWAYS AS IDENTITY: lo asigna la base.
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (
			name, species, microchip,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		p.Name,
		p.Species,
		toNullString(p.Microchip),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, species, microchip,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	var chip sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&chip,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	if chip.Valid {
		c := chip.String
		p.Microchip = &c
	}

	return p, nil
}

func (r *PetsRepo) ListBySpecies(ctx context.Context, species string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, species, microchip,
			created_at, updated_at
		FROM pets
		WHERE species = $1
		ORDER BY id ASC
	`, species)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		var chip sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Species,
			&chip,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if chip.Valid {
			c := chip.String
			p.Microchip = &c
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
