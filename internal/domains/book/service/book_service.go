package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
	instancerepo "library-catalog/internal/domains/bookinstance/repository"
)

// bookService implements ServiceInterface. The instance repository is a
// cross-domain dependency used only for the home page counters.
type bookService struct {
	repo      repository.RepositoryInterface
	instances instancerepo.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface, instances instancerepo.RepositoryInterface) ServiceInterface {
	return &bookService{
		repo:      repo,
		instances: instances,
	}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) Get(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Home(ctx context.Context) (model.Counts, error) {
	var counts model.Counts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts.Books, err = s.repo.CountBooks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.BookInstances, err = s.instances.CountAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.InstancesAvailable, err = s.instances.CountByStatus(gctx, instancemodel.StatusAvailable)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Authors, err = s.repo.CountAuthors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Genres, err = s.repo.CountGenres(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Counts{}, err
	}

	return counts, nil
}
