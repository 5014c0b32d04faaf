package handler

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/genre/model"
)

// fakeGenreService mirrors the duplicate-resolving create contract.
type fakeGenreService struct {
	genres   map[uuid.UUID]*model.Genre
	inserted int
}

func newFakeGenreService() *fakeGenreService {
	return &fakeGenreService{genres: map[uuid.UUID]*model.Genre{}}
}

func (s *fakeGenreService) List(ctx context.Context) ([]model.Genre, error) {
	out := make([]model.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		out = append(out, *g)
	}
	return out, nil
}

func (s *fakeGenreService) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	g, ok := s.genres[id]
	if !ok {
		return nil, model.ErrGenreNotFound
	}
	return g, nil
}

func (s *fakeGenreService) Detail(ctx context.Context, id uuid.UUID) (*model.Genre, []bookmodel.Book, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return g, nil, nil
}

func (s *fakeGenreService) Create(ctx context.Context, f model.GenreForm) (*model.Genre, bool, error) {
	for _, g := range s.genres {
		if strings.EqualFold(g.Name, f.Name) {
			return g, true, nil
		}
	}
	g := &model.Genre{ID: uuid.New(), Name: f.Name}
	s.genres[g.ID] = g
	s.inserted++
	return g, false, nil
}

func (s *fakeGenreService) Update(ctx context.Context, id uuid.UUID, f model.GenreForm) (*model.Genre, error) {
	g, ok := s.genres[id]
	if !ok {
		return nil, model.ErrGenreNotFound
	}
	g.Name = f.Name
	return g, nil
}

func testRouter(svc *fakeGenreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl := template.Must(template.New("").Parse(`
{{define "genre_list"}}list:{{len .genre_list}}{{end}}
{{define "genre_detail"}}detail:{{.genre.Name}}{{end}}
{{define "genre_form"}}form:{{.title}}{{range .errors}}|{{.Message}}{{end}}{{end}}
{{define "error"}}error:{{.message}}{{end}}
`))
	router.SetHTMLTemplate(tmpl)

	h := NewGenreHandler(svc)
	router.GET("/catalog/genres", h.List)
	router.GET("/catalog/genre/create", h.CreateForm)
	router.POST("/catalog/genre/create", h.Create)
	router.GET("/catalog/genre/:id", h.Detail)
	router.GET("/catalog/genre/:id/update", h.UpdateForm)
	router.POST("/catalog/genre/:id/update", h.Update)
	return router
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateDuplicateRedirectsToExisting(t *testing.T) {
	svc := newFakeGenreService()
	existing := &model.Genre{ID: uuid.New(), Name: "Fantasy"}
	svc.genres[existing.ID] = existing
	router := testRouter(svc)

	v := url.Values{}
	v.Set("name", "fantasy")
	w := postForm(router, "/catalog/genre/create", v)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, existing.URL(), w.Header().Get("Location"))
	assert.Zero(t, svc.inserted, "duplicate name must not insert")
}

func TestCreateNewGenreRedirects(t *testing.T) {
	svc := newFakeGenreService()
	router := testRouter(svc)

	v := url.Values{}
	v.Set("name", "Poetry")
	w := postForm(router, "/catalog/genre/create", v)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, svc.inserted)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/catalog/genre/"))
}

func TestCreateShortNameReRenders(t *testing.T) {
	svc := newFakeGenreService()
	router := testRouter(svc)

	v := url.Values{}
	v.Set("name", "ab")
	w := postForm(router, "/catalog/genre/create", v)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genre name must contain at least 3 characters")
	assert.Zero(t, svc.inserted)
}

func TestDetailMissingGenreRenders404(t *testing.T) {
	router := testRouter(newFakeGenreService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/genre/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Genre not found")
}
