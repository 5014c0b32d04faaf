package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author/model"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, first_name, family_name, date_of_birth, date_of_death, created_at, updated_at`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.FamilyName,
		&a.DateOfBirth,
		&a.DateOfDeath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        ORDER BY family_name, first_name
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        WHERE id = $1
    `

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (first_name, family_name, date_of_birth, date_of_death)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns + `
    `

	created, err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.FirstName,
		a.FamilyName,
		a.DateOfBirth,
		a.DateOfDeath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET
            first_name = $1,
            family_name = $2,
            date_of_birth = $3,
            date_of_death = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING ` + authorColumns + `
    `

	updated, err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.FirstName,
		a.FamilyName,
		a.DateOfBirth,
		a.DateOfDeath,
		a.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}
