package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/genre/model"
)

// RepositoryInterface is the genre data-access contract.
type RepositoryInterface interface {
	// GetAll returns every genre sorted by name.
	GetAll(ctx context.Context) ([]model.Genre, error)

	// GetByID returns one genre or model.ErrGenreNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// GetByNameFold returns the genre whose name matches case-insensitively,
	// or nil when no record matches. Absence is not an error here; the
	// duplicate resolver treats it as "safe to insert".
	GetByNameFold(ctx context.Context, name string) (*model.Genre, error)

	// Create inserts a new genre and returns the stored record.
	Create(ctx context.Context, g *model.Genre) (*model.Genre, error)

	// Update replaces the record's fields keyed by its id.
	Update(ctx context.Context, g *model.Genre) (*model.Genre, error)
}
