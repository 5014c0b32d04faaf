package model

import (
	"time"

	"github.com/google/uuid"

	authormodel "library-catalog/internal/domains/author/model"
	genremodel "library-catalog/internal/domains/genre/model"
)

// Book is one title record. It references exactly one Author and zero or
// more Genres by id. The resolved pointers are populated by read paths and
// stay nil when the referenced record no longer exists; pages render the
// reference as absent rather than failing.
type Book struct {
	ID       uuid.UUID   `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	AuthorID uuid.UUID   `json:"author_id" db:"author_id"`
	Summary  string      `json:"summary" db:"summary"`
	ISBN     string      `json:"isbn" db:"isbn"`
	GenreIDs []uuid.UUID `json:"genre_ids" db:"genre_ids"`

	// Resolved references, read paths only.
	Author *authormodel.Author `json:"author,omitempty"`
	Genres []genremodel.Genre  `json:"genres,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL is the canonical detail path for this record.
func (b *Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}

// AuthorName is the referenced author's full name, or the empty string for
// a dangling reference.
func (b *Book) AuthorName() string {
	if b.Author == nil {
		return ""
	}
	return b.Author.FullName()
}

// Counts feeds the catalog home page.
type Counts struct {
	Books              int64
	BookInstances      int64
	InstancesAvailable int64
	Authors            int64
	Genres             int64
}
