package service

import (
	"context"

	"github.com/google/uuid"

	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
	"library-catalog/internal/domains/bookinstance/model"
	"library-catalog/internal/domains/bookinstance/repository"
)

// bookInstanceService implements ServiceInterface. The book repository is
// a cross-domain dependency feeding the form's book selector.
type bookInstanceService struct {
	repo  repository.RepositoryInterface
	books bookrepo.RepositoryInterface
}

func NewBookInstanceService(repo repository.RepositoryInterface, books bookrepo.RepositoryInterface) ServiceInterface {
	return &bookInstanceService{
		repo:  repo,
		books: books,
	}
}

func (s *bookInstanceService) List(ctx context.Context) ([]model.BookInstance, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookInstanceService) Get(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookInstanceNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookInstanceService) BookTitles(ctx context.Context) ([]bookmodel.Book, error) {
	return s.books.GetTitles(ctx)
}

func (s *bookInstanceService) Create(ctx context.Context, f model.BookInstanceForm) (*model.BookInstance, error) {
	return s.repo.Create(ctx, f.Record(uuid.Nil))
}

func (s *bookInstanceService) Update(ctx context.Context, id uuid.UUID, f model.BookInstanceForm) (*model.BookInstance, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookInstanceNotFound
	}
	return s.repo.Update(ctx, f.Record(id))
}

func (s *bookInstanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
