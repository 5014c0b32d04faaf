package model

import (
	"time"

	"github.com/google/uuid"
)

// Genre is one classification record. Uniqueness of the name is enforced at
// the application level, case-insensitively, not by a storage constraint.
type Genre struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// URL is the canonical detail path for this record.
func (g *Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}
