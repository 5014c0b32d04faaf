package model

import (
	"github.com/google/uuid"

	"library-catalog/internal/shared/form"
)

// BookInstanceForm carries the sanitized values of a copy submission. Book
// holds the referenced book id as submitted; existence is not re-checked
// here, the insert's reference constraint owns that.
type BookInstanceForm struct {
	Book    string
	Imprint string
	Status  string
	DueBack string
}

// ValidateForm runs the book-instance rule chains over raw form input. The
// status value is checked against the enumeration; a status outside the
// known set never reaches the store.
func ValidateForm(submitted map[string][]string) (BookInstanceForm, form.Errors) {
	values, errs := form.Run(submitted,
		form.Field("book",
			form.Trim(),
			form.Required("Book must be specified"),
			form.Escape(),
		),
		form.Field("imprint",
			form.Trim(),
			form.MinLength(2, "Imprint must be specified"),
			form.Escape(),
		),
		form.Field("status",
			form.Escape(),
			form.OneOf(StatusValues(), "Invalid status"),
		),
		form.Field("due_back",
			form.Trim(),
			form.ISODate("Invalid date"),
		),
	)

	return BookInstanceForm{
		Book:    values["book"],
		Imprint: values["imprint"],
		Status:  values["status"],
		DueBack: values["due_back"],
	}, errs
}

// Record builds a BookInstance from validated form values. A zero id means
// a new record; updates carry the target id. A book value that is not a
// uuid leaves BookID zero and fails at the store, surfacing as a store
// fault rather than a validation failure, matching the "not re-checked
// here" contract.
func (f BookInstanceForm) Record(id uuid.UUID) *BookInstance {
	bookID, _ := uuid.Parse(f.Book)
	return &BookInstance{
		ID:      id,
		BookID:  bookID,
		Imprint: f.Imprint,
		Status:  Status(f.Status),
		DueBack: form.ParseDate(f.DueBack),
	}
}

// FormFromInstance pre-fills the form for the update page.
func FormFromInstance(bi *BookInstance) BookInstanceForm {
	return BookInstanceForm{
		Book:    bi.BookID.String(),
		Imprint: bi.Imprint,
		Status:  string(bi.Status),
		DueBack: bi.DueBackISO(),
	}
}
