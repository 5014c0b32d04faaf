package model

import (
	"github.com/google/uuid"

	"library-catalog/internal/shared/form"
)

// AuthorForm carries the sanitized values of an author submission. On a
// validation failure the same struct re-renders the form pre-filled.
type AuthorForm struct {
	FirstName   string
	FamilyName  string
	DateOfBirth string
	DateOfDeath string
}

// ValidateForm runs the author rule chains over raw form input. All chains
// run to completion; the returned errors carry every failure at once.
func ValidateForm(submitted map[string][]string) (AuthorForm, form.Errors) {
	values, errs := form.Run(submitted,
		form.Field("first_name",
			form.Trim(),
			form.MinLength(2, "First name must be at least 2 characters long"),
			form.MaxLength(100, "First name must be at most 100 characters long"),
			form.Escape(),
			form.Alpha("First name has non-alpha characters"),
		),
		form.Field("family_name",
			form.Trim(),
			form.MinLength(2, "Family name must be at least 2 characters long"),
			form.MaxLength(100, "Family name must be at most 100 characters long"),
			form.Escape(),
			form.Alpha("Family name has non-alpha characters"),
		),
		form.Field("date_of_birth",
			form.Trim(),
			form.ISODate("Invalid date of birth"),
		),
		form.Field("date_of_death",
			form.Trim(),
			form.ISODate("Invalid date of death"),
		),
	)

	return AuthorForm{
		FirstName:   values["first_name"],
		FamilyName:  values["family_name"],
		DateOfBirth: values["date_of_birth"],
		DateOfDeath: values["date_of_death"],
	}, errs
}

// Record builds an Author from validated form values. A zero id means a
// new record; updates carry the target id.
func (f AuthorForm) Record(id uuid.UUID) *Author {
	return &Author{
		ID:          id,
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: form.ParseDate(f.DateOfBirth),
		DateOfDeath: form.ParseDate(f.DateOfDeath),
	}
}

// FormFromAuthor pre-fills the form with an existing record's values, for
// the update page.
func FormFromAuthor(a *Author) AuthorForm {
	return AuthorForm{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: a.BirthISO(),
		DateOfDeath: a.DeathISO(),
	}
}
