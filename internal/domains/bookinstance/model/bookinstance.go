package model

import (
	"time"

	"github.com/google/uuid"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/shared/dates"
)

// Status enumerates the loan states of a physical copy.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// Statuses lists every valid status, in display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}
}

// StatusValues is Statuses as plain strings, for the form enumeration rule.
func StatusValues() []string {
	ss := Statuses()
	values := make([]string, len(ss))
	for i, s := range ss {
		values[i] = string(s)
	}
	return values
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// BookInstance is one physical copy of a Book. The resolved Book pointer is
// populated by read paths and stays nil when the referenced book no longer
// exists; pages render the reference as absent rather than failing.
type BookInstance struct {
	ID      uuid.UUID `json:"id" db:"id"`
	BookID  uuid.UUID `json:"book_id" db:"book_id"`
	Imprint string    `json:"imprint" db:"imprint"`
	Status  Status    `json:"status" db:"status"`
	DueBack *time.Time `json:"due_back" db:"due_back"`

	// Resolved reference, read paths only.
	Book *bookmodel.Book `json:"book,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL is the canonical detail path for this record.
func (bi *BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.String()
}

// BookTitle is the referenced book's title, or the empty string for a
// dangling reference.
func (bi *BookInstance) BookTitle() string {
	if bi.Book == nil {
		return ""
	}
	return bi.Book.Title
}

func (bi *BookInstance) DueBackFormatted() string {
	return dates.FormatLong(bi.DueBack)
}

func (bi *BookInstance) DueBackISO() string {
	return dates.FormatISO(bi.DueBack)
}
