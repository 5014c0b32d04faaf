package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
)

// authorService implements ServiceInterface. The book repository is a
// cross-domain dependency used only for referencing-book reads.
type authorService struct {
	repo  repository.RepositoryInterface
	books bookrepo.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface, books bookrepo.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Detail issues the record read and the referencing-books read in
// parallel. There is no transactional consistency between the two; the
// page tolerates a book list that raced a concurrent write.
func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*model.Author, []bookmodel.Book, error) {
	if id == uuid.Nil {
		return nil, nil, model.ErrAuthorNotFound
	}

	var (
		a     *model.Author
		books []bookmodel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.GetByAuthor(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, books, nil
}

func (s *authorService) Create(ctx context.Context, f model.AuthorForm) (*model.Author, error) {
	return s.repo.Create(ctx, f.Record(uuid.Nil))
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, f model.AuthorForm) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.Update(ctx, f.Record(id))
}
