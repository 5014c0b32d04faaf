package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	authormodel "library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/book/model"
	genremodel "library-catalog/internal/domains/genre/model"
	"library-catalog/pkg/cache"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool.
// The selector title list is cached; it is read on every book-instance form.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	bookTitlesCacheKey = "books:titles"
	// Book records never mutate through this application, so the title
	// list expires instead of being invalidated.
	bookTitlesCacheTTL = 5 * time.Minute
)

// GetAll left-joins the author so a dangling author reference yields a nil
// resolved pointer instead of dropping the row.
func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	query := `
        SELECT b.id, b.title, b.author_id, b.summary, b.isbn,
               a.id, a.first_name, a.family_name
        FROM books b
        LEFT JOIN authors a ON b.author_id = a.id
        ORDER BY b.title
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		var authorID *uuid.UUID
		var firstName, familyName *string

		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.AuthorID,
			&b.Summary,
			&b.ISBN,
			&authorID,
			&firstName,
			&familyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		if authorID != nil {
			b.Author = &authormodel.Author{
				ID:         *authorID,
				FirstName:  derefString(firstName),
				FamilyName: derefString(familyName),
			}
		}

		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetTitles(ctx context.Context) ([]model.Book, error) {
	var cached []model.Book
	if hit, err := r.cache.Get(ctx, bookTitlesCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `
        SELECT id, title
        FROM books
        ORDER BY title
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query book titles: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, fmt.Errorf("failed to scan book title: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book titles: %w", err)
	}

	r.cache.Set(ctx, bookTitlesCacheKey, books, bookTitlesCacheTTL)

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `
        SELECT b.id, b.title, b.author_id, b.summary, b.isbn, b.genre_ids,
               a.id, a.first_name, a.family_name, a.date_of_birth, a.date_of_death
        FROM books b
        LEFT JOIN authors a ON b.author_id = a.id
        WHERE b.id = $1
    `

	var b model.Book
	var authorID *uuid.UUID
	var firstName, familyName *string
	var birth, death *time.Time

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.AuthorID,
		&b.Summary,
		&b.ISBN,
		&b.GenreIDs,
		&authorID,
		&firstName,
		&familyName,
		&birth,
		&death,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if authorID != nil {
		b.Author = &authormodel.Author{
			ID:          *authorID,
			FirstName:   derefString(firstName),
			FamilyName:  derefString(familyName),
			DateOfBirth: birth,
			DateOfDeath: death,
		}
	}

	genres, err := r.genresByIDs(ctx, b.GenreIDs)
	if err != nil {
		return nil, err
	}
	b.Genres = genres

	return &b, nil
}

// genresByIDs resolves the genre references that still exist; dangling ids
// simply produce no row.
func (r *postgresRepository) genresByIDs(ctx context.Context, ids []uuid.UUID) ([]genremodel.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
        SELECT id, name
        FROM genres
        WHERE id = ANY($1)
        ORDER BY name
    `

	rows, err := r.pool.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query book genres: %w", err)
	}
	defer rows.Close()

	var genres []genremodel.Genre
	for rows.Next() {
		var g genremodel.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan book genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book genres: %w", err)
	}

	return genres, nil
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	query := `
        SELECT id, title, summary
        FROM books
        WHERE author_id = $1
        ORDER BY title
    `
	return r.queryTitleSummary(ctx, query, authorID)
}

func (r *postgresRepository) GetByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	query := `
        SELECT id, title, summary
        FROM books
        WHERE $1 = ANY(genre_ids)
        ORDER BY title
    `
	return r.queryTitleSummary(ctx, query, genreID)
}

func (r *postgresRepository) queryTitleSummary(ctx context.Context, query string, arg any) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query referencing books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan referencing book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating referencing books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) CountBooks(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM books`)
}

func (r *postgresRepository) CountAuthors(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM authors`)
}

func (r *postgresRepository) CountGenres(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM genres`)
}

func (r *postgresRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	return n, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
