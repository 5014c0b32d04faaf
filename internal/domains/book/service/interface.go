package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// ServiceInterface is the book read contract. Books have no form workflow
// in this application.
type ServiceInterface interface {
	// List returns every book with its resolved author, sorted by title.
	List(ctx context.Context) ([]model.Book, error)

	// Get returns one book with resolved author and genres, or
	// model.ErrBookNotFound.
	Get(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// Home returns the entity counts for the catalog index page. The
	// count queries run concurrently; either failure aborts the read.
	Home(ctx context.Context) (model.Counts, error)
}
