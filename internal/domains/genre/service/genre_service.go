package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
	"library-catalog/internal/domains/genre/model"
	"library-catalog/internal/domains/genre/repository"
)

// genreService implements ServiceInterface, including the duplicate
// resolver consulted by the create workflow.
type genreService struct {
	repo  repository.RepositoryInterface
	books bookrepo.RepositoryInterface
}

func NewGenreService(repo repository.RepositoryInterface, books bookrepo.RepositoryInterface) ServiceInterface {
	return &genreService{
		repo:  repo,
		books: books,
	}
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	if id == uuid.Nil {
		return nil, model.ErrGenreNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*model.Genre, []bookmodel.Book, error) {
	if id == uuid.Nil {
		return nil, nil, model.ErrGenreNotFound
	}

	var (
		genre *model.Genre
		books []bookmodel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		genre, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.GetByGenre(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return genre, books, nil
}

func (s *genreService) Create(ctx context.Context, f model.GenreForm) (*model.Genre, bool, error) {
	existing, err := s.repo.GetByNameFold(ctx, f.Name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	created, err := s.repo.Create(ctx, f.Record(uuid.Nil))
	if err != nil {
		return nil, false, err
	}
	return created, false, nil
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, f model.GenreForm) (*model.Genre, error) {
	if id == uuid.Nil {
		return nil, model.ErrGenreNotFound
	}
	return s.repo.Update(ctx, f.Record(id))
}
