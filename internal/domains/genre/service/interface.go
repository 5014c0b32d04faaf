package service

import (
	"context"

	"github.com/google/uuid"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/genre/model"
)

// ServiceInterface is the genre workflow contract.
type ServiceInterface interface {
	// List returns every genre sorted by name.
	List(ctx context.Context) ([]model.Genre, error)

	// Get returns one genre or model.ErrGenreNotFound.
	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// Detail returns the genre and the books referencing it, read
	// concurrently; either failure aborts the whole read.
	Detail(ctx context.Context, id uuid.UUID) (*model.Genre, []bookmodel.Book, error)

	// Create persists a new genre unless one with the same name already
	// exists (case-insensitive). When it does, the existing record is
	// returned with existed=true and nothing is inserted: create by name
	// is idempotent. The check-then-insert sequence is not atomic against
	// concurrent submissions; that race is accepted.
	Create(ctx context.Context, f model.GenreForm) (g *model.Genre, existed bool, err error)

	// Update replaces the record's fields keyed by id.
	Update(ctx context.Context, id uuid.UUID, f model.GenreForm) (*model.Genre, error)
}
