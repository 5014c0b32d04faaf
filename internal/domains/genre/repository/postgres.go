package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/genre/model"
	"library-catalog/pkg/cache"
)

// postgresRepository implements RepositoryInterface with raw SQL on pgxpool
// and a read-through Redis cache for the hot read paths.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	genreCacheKeyPrefix = "genre:"
	genreListCacheKey   = "genres:all"
	cacheTTL            = 15 * time.Minute
)

const genreColumns = `id, name, created_at, updated_at`

func scanGenre(row pgx.Row) (*model.Genre, error) {
	var g model.Genre
	if err := row.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Genre, error) {
	var cached []model.Genre
	if hit, err := r.cache.Get(ctx, genreListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	query := `
        SELECT ` + genreColumns + `
        FROM genres
        ORDER BY name
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, *g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	r.cache.Set(ctx, genreListCacheKey, genres, cacheTTL)

	return genres, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	cacheKey := genreCacheKeyPrefix + id.String()

	var cached model.Genre
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	query := `
        SELECT ` + genreColumns + `
        FROM genres
        WHERE id = $1
    `

	g, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, g, cacheTTL)

	return g, nil
}

// GetByNameFold matches with lower() on both sides. The check is
// application level; there is no unique index backing it, so two
// concurrent submissions of the same name can still both insert.
func (r *postgresRepository) GetByNameFold(ctx context.Context, name string) (*model.Genre, error) {
	query := `
        SELECT ` + genreColumns + `
        FROM genres
        WHERE lower(name) = lower($1)
        LIMIT 1
    `

	g, err := scanGenre(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get genre by name: %w", err)
	}

	return g, nil
}

func (r *postgresRepository) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	query := `
        INSERT INTO genres (name)
        VALUES ($1)
        RETURNING ` + genreColumns + `
    `

	created, err := scanGenre(r.pool.QueryRow(ctx, query, g.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	r.cache.Delete(ctx, genreListCacheKey)

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	query := `
        UPDATE genres
        SET name = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + genreColumns + `
    `

	updated, err := scanGenre(r.pool.QueryRow(ctx, query, g.Name, g.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}

	r.cache.Delete(ctx, genreCacheKeyPrefix+g.ID.String(), genreListCacheKey)

	return updated, nil
}
