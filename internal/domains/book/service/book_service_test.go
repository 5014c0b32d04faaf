package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/book/model"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
)

type fakeBookRepo struct {
	books      map[uuid.UUID]*model.Book
	countErr   error
	bookCount  int64
	authors    int64
	genres     int64
}

func (r *fakeBookRepo) GetAll(ctx context.Context) ([]model.Book, error)    { return nil, nil }
func (r *fakeBookRepo) GetTitles(ctx context.Context) ([]model.Book, error) { return nil, nil }
func (r *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return b, nil
}
func (r *fakeBookRepo) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) GetByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) CountBooks(ctx context.Context) (int64, error) {
	return r.bookCount, r.countErr
}
func (r *fakeBookRepo) CountAuthors(ctx context.Context) (int64, error) { return r.authors, nil }
func (r *fakeBookRepo) CountGenres(ctx context.Context) (int64, error)  { return r.genres, nil }

type fakeInstanceRepo struct {
	total     int64
	available int64
}

func (r *fakeInstanceRepo) GetAll(ctx context.Context) ([]instancemodel.BookInstance, error) {
	return nil, nil
}
func (r *fakeInstanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*instancemodel.BookInstance, error) {
	return nil, instancemodel.ErrBookInstanceNotFound
}
func (r *fakeInstanceRepo) Create(ctx context.Context, bi *instancemodel.BookInstance) (*instancemodel.BookInstance, error) {
	return bi, nil
}
func (r *fakeInstanceRepo) Update(ctx context.Context, bi *instancemodel.BookInstance) (*instancemodel.BookInstance, error) {
	return bi, nil
}
func (r *fakeInstanceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeInstanceRepo) CountAll(ctx context.Context) (int64, error)    { return r.total, nil }
func (r *fakeInstanceRepo) CountByStatus(ctx context.Context, status instancemodel.Status) (int64, error) {
	if status == instancemodel.StatusAvailable {
		return r.available, nil
	}
	return 0, nil
}

func TestHomeAggregatesCounts(t *testing.T) {
	svc := NewBookService(
		&fakeBookRepo{bookCount: 7, authors: 3, genres: 4},
		&fakeInstanceRepo{total: 12, available: 5},
	)

	counts, err := svc.Home(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.Counts{
		Books:              7,
		BookInstances:      12,
		InstancesAvailable: 5,
		Authors:            3,
		Genres:             4,
	}, counts)
}

func TestHomeAnyCountFailureAborts(t *testing.T) {
	boom := errors.New("store down")
	svc := NewBookService(
		&fakeBookRepo{countErr: boom},
		&fakeInstanceRepo{},
	)

	_, err := svc.Home(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGetMissingBook(t *testing.T) {
	svc := NewBookService(&fakeBookRepo{}, &fakeInstanceRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	_, err = svc.Get(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
