package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface is the author data-access contract.
type RepositoryInterface interface {
	// GetAll returns every author sorted by family name.
	GetAll(ctx context.Context) ([]model.Author, error)

	// GetByID returns one author or model.ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Create inserts a new author and returns the stored record.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// Update replaces every stored field of the record keyed by its id.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)
}
