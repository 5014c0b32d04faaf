package model

import (
	"github.com/google/uuid"

	"library-catalog/internal/shared/form"
)

// GenreForm carries the sanitized value of a genre submission.
type GenreForm struct {
	Name string
}

// ValidateForm runs the genre rule chain over raw form input.
func ValidateForm(submitted map[string][]string) (GenreForm, form.Errors) {
	values, errs := form.Run(submitted,
		form.Field("name",
			form.Trim(),
			form.MinLength(3, "Genre name must contain at least 3 characters"),
			form.Escape(),
		),
	)

	return GenreForm{Name: values["name"]}, errs
}

// Record builds a Genre from validated form values.
func (f GenreForm) Record(id uuid.UUID) *Genre {
	return &Genre{ID: id, Name: f.Name}
}

// FormFromGenre pre-fills the form for the update page.
func FormFromGenre(g *Genre) GenreForm {
	return GenreForm{Name: g.Name}
}
