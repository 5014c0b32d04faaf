package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface is the book data-access contract. Book records are
// read-only in this application; they are referenced by the author, genre
// and book-instance workflows.
type RepositoryInterface interface {
	// GetAll returns every book with its resolved author, sorted by title.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetTitles returns id+title for every book sorted by title, for the
	// selector on the book-instance forms.
	GetTitles(ctx context.Context) ([]model.Book, error)

	// GetByID returns one book with resolved author and genres, or
	// model.ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetByAuthor returns title+summary of every book referencing the author.
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	// GetByGenre returns title+summary of every book referencing the genre.
	GetByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)

	// Count methods feed the catalog home page.
	CountBooks(ctx context.Context) (int64, error)
	CountAuthors(ctx context.Context) (int64, error)
	CountGenres(ctx context.Context) (int64, error)
}
