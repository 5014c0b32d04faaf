package service

import (
	"context"

	"github.com/google/uuid"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/bookinstance/model"
)

// ServiceInterface is the book-instance workflow contract.
type ServiceInterface interface {
	// List returns every copy with its resolved book, sorted by status.
	List(ctx context.Context) ([]model.BookInstance, error)

	// Get returns one copy or model.ErrBookInstanceNotFound.
	Get(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)

	// BookTitles returns the sorted book list for the form selector.
	BookTitles(ctx context.Context) ([]bookmodel.Book, error)

	// Create persists a new copy from validated form values.
	Create(ctx context.Context, f model.BookInstanceForm) (*model.BookInstance, error)

	// Update replaces the record's fields keyed by id.
	Update(ctx context.Context, id uuid.UUID, f model.BookInstanceForm) (*model.BookInstance, error)

	// Delete removes the record by id; an absent id is a silent no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
