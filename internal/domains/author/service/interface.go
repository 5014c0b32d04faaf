package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	bookmodel "library-catalog/internal/domains/book/model"
)

// ServiceInterface is the author workflow contract.
type ServiceInterface interface {
	// List returns every author sorted by family name.
	List(ctx context.Context) ([]model.Author, error)

	// Get returns one author or model.ErrAuthorNotFound.
	Get(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Detail returns the author and the books referencing them. The two
	// reads run concurrently; either failure aborts the whole read.
	Detail(ctx context.Context, id uuid.UUID) (*model.Author, []bookmodel.Book, error)

	// Create persists a new author from validated form values.
	Create(ctx context.Context, f model.AuthorForm) (*model.Author, error)

	// Update replaces the record's fields keyed by id.
	Update(ctx context.Context, id uuid.UUID, f model.AuthorForm) (*model.Author, error)
}
