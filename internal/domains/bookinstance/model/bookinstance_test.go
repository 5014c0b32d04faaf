package model

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-catalog/internal/domains/book/model"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.IsValid(), "status %q", s)
	}
	assert.False(t, Status("Lost").IsValid())
	assert.False(t, Status("available").IsValid(), "statuses are case-sensitive")
	assert.False(t, Status("").IsValid())
}

func TestBookTitleDanglingReference(t *testing.T) {
	bi := &BookInstance{BookID: uuid.New()}
	assert.Equal(t, "", bi.BookTitle())

	bi.Book = &bookmodel.Book{Title: "The Name of the Wind"}
	assert.Equal(t, "The Name of the Wind", bi.BookTitle())
}

func TestValidateFormRejectsUnknownStatus(t *testing.T) {
	v := url.Values{}
	v.Set("book", uuid.NewString())
	v.Set("imprint", "Gollancz, 2007")
	v.Set("status", "Lost")

	_, errs := ValidateForm(v)

	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid status", errs[0].Message)
}

func TestValidateFormRequiredFields(t *testing.T) {
	_, errs := ValidateForm(url.Values{})

	assert.True(t, errs.Has("book"))
	assert.True(t, errs.Has("imprint"))
	assert.True(t, errs.Has("status"))
	assert.Contains(t, errs.Messages(), "Book must be specified")
	assert.Contains(t, errs.Messages(), "Imprint must be specified")
}

func TestRecordKeepsCalendarDay(t *testing.T) {
	f := BookInstanceForm{
		Book:    "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Imprint: "Gollancz, 2007",
		Status:  "Loaned",
		DueBack: "2024-03-01",
	}

	bi := f.Record(uuid.Nil)
	require.NotNil(t, bi.DueBack)
	assert.Equal(t, time.March, bi.DueBack.Month())
	assert.Equal(t, 1, bi.DueBack.Day())
	assert.Equal(t, time.UTC, bi.DueBack.Location())
	assert.Equal(t, "2024-03-01", bi.DueBackISO())
	assert.Equal(t, StatusLoaned, bi.Status)

	assert.Equal(t, f, FormFromInstance(bi))
}

func TestURLAndDueBackFormatted(t *testing.T) {
	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	due := time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC)
	bi := &BookInstance{ID: id, DueBack: &due}

	assert.Equal(t, "/catalog/bookinstance/f47ac10b-58cc-4372-a567-0e02b2c3d479", bi.URL())
	assert.Equal(t, "Mar 21st, 2024", bi.DueBackFormatted())

	assert.Equal(t, "", (&BookInstance{}).DueBackFormatted())
}
