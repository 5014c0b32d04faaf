package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/bookinstance/model"
)

// RepositoryInterface is the book-instance data-access contract.
type RepositoryInterface interface {
	// GetAll returns every copy with its resolved book, sorted by status.
	GetAll(ctx context.Context) ([]model.BookInstance, error)

	// GetByID returns one copy with its resolved book, or
	// model.ErrBookInstanceNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)

	// Create inserts a new copy and returns the stored record.
	Create(ctx context.Context, bi *model.BookInstance) (*model.BookInstance, error)

	// Update replaces every stored field of the record keyed by its id.
	Update(ctx context.Context, bi *model.BookInstance) (*model.BookInstance, error)

	// Delete removes the record by id. Deleting an absent id is a no-op,
	// not an error; the delete workflow redirects unconditionally.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count methods feed the catalog home page.
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
}
