package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/bookinstance/model"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const instanceJoinQuery = `
    SELECT bi.id, bi.book_id, bi.imprint, bi.status, bi.due_back,
           bi.created_at, bi.updated_at,
           b.id, b.title
    FROM book_instances bi
    LEFT JOIN books b ON bi.book_id = b.id
`

// scanJoined reads one copy plus its left-joined book. A dangling book
// reference leaves the resolved pointer nil.
func scanJoined(row pgx.Row) (*model.BookInstance, error) {
	var bi model.BookInstance
	var bookID *uuid.UUID
	var bookTitle *string

	err := row.Scan(
		&bi.ID,
		&bi.BookID,
		&bi.Imprint,
		&bi.Status,
		&bi.DueBack,
		&bi.CreatedAt,
		&bi.UpdatedAt,
		&bookID,
		&bookTitle,
	)
	if err != nil {
		return nil, err
	}

	if bookID != nil {
		title := ""
		if bookTitle != nil {
			title = *bookTitle
		}
		bi.Book = &bookmodel.Book{ID: *bookID, Title: title}
	}

	return &bi, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.BookInstance, error) {
	query := instanceJoinQuery + ` ORDER BY bi.status, b.title`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query book instances: %w", err)
	}
	defer rows.Close()

	var instances []model.BookInstance
	for rows.Next() {
		bi, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		instances = append(instances, *bi)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book instances: %w", err)
	}

	return instances, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	query := instanceJoinQuery + ` WHERE bi.id = $1`

	bi, err := scanJoined(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get book instance by id: %w", err)
	}

	return bi, nil
}

const instanceColumns = `id, book_id, imprint, status, due_back, created_at, updated_at`

func scanInstance(row pgx.Row) (*model.BookInstance, error) {
	var bi model.BookInstance
	err := row.Scan(
		&bi.ID,
		&bi.BookID,
		&bi.Imprint,
		&bi.Status,
		&bi.DueBack,
		&bi.CreatedAt,
		&bi.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bi, nil
}

func (r *postgresRepository) Create(ctx context.Context, bi *model.BookInstance) (*model.BookInstance, error) {
	query := `
        INSERT INTO book_instances (book_id, imprint, status, due_back)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + instanceColumns + `
    `

	created, err := scanInstance(r.pool.QueryRow(
		ctx,
		query,
		bi.BookID,
		bi.Imprint,
		bi.Status,
		bi.DueBack,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create book instance: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, bi *model.BookInstance) (*model.BookInstance, error) {
	query := `
        UPDATE book_instances
        SET
            book_id = $1,
            imprint = $2,
            status = $3,
            due_back = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING ` + instanceColumns + `
    `

	updated, err := scanInstance(r.pool.QueryRow(
		ctx,
		query,
		bi.BookID,
		bi.Imprint,
		bi.Status,
		bi.DueBack,
		bi.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookInstanceNotFound
		}
		return nil, fmt.Errorf("failed to update book instance: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM book_instances WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete book instance: %w", err)
	}

	return nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_instances`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_instances WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}
	return n, nil
}
