package model

import (
	"time"

	"github.com/google/uuid"

	"library-catalog/internal/shared/dates"
)

// Author is one writer record. Books reference authors by id; nothing here
// owns a book's lifecycle.
type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death" db:"date_of_death"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// FullName is "FamilyName, FirstName", or the empty string when either
// base name is missing.
func (a *Author) FullName() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// URL is the canonical detail path for this record.
func (a *Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}

func (a *Author) BirthFormatted() string {
	return dates.FormatLong(a.DateOfBirth)
}

func (a *Author) DeathFormatted() string {
	return dates.FormatLong(a.DateOfDeath)
}

func (a *Author) BirthISO() string {
	return dates.FormatISO(a.DateOfBirth)
}

func (a *Author) DeathISO() string {
	return dates.FormatISO(a.DateOfDeath)
}

// Lifespan renders "birth - death" with whichever ends are known.
func (a *Author) Lifespan() string {
	return a.BirthFormatted() + " - " + a.DeathFormatted()
}
