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
	"library-catalog/internal/domains/bookinstance/model"
)

type fakeInstanceService struct {
	instances map[uuid.UUID]*model.BookInstance
	titles    []bookmodel.Book
	deleted   []uuid.UUID
}

func newFakeInstanceService() *fakeInstanceService {
	return &fakeInstanceService{instances: map[uuid.UUID]*model.BookInstance{}}
}

func (s *fakeInstanceService) List(ctx context.Context) ([]model.BookInstance, error) {
	out := make([]model.BookInstance, 0, len(s.instances))
	for _, bi := range s.instances {
		out = append(out, *bi)
	}
	return out, nil
}

func (s *fakeInstanceService) Get(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	bi, ok := s.instances[id]
	if !ok {
		return nil, model.ErrBookInstanceNotFound
	}
	return bi, nil
}

func (s *fakeInstanceService) BookTitles(ctx context.Context) ([]bookmodel.Book, error) {
	return s.titles, nil
}

func (s *fakeInstanceService) Create(ctx context.Context, f model.BookInstanceForm) (*model.BookInstance, error) {
	bi := f.Record(uuid.New())
	s.instances[bi.ID] = bi
	return bi, nil
}

func (s *fakeInstanceService) Update(ctx context.Context, id uuid.UUID, f model.BookInstanceForm) (*model.BookInstance, error) {
	if _, ok := s.instances[id]; !ok {
		return nil, model.ErrBookInstanceNotFound
	}
	bi := f.Record(id)
	s.instances[id] = bi
	return bi, nil
}

func (s *fakeInstanceService) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.instances, id)
	return nil
}

func testRouter(svc *fakeInstanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl := template.Must(template.New("").Parse(`
{{define "bookinstance_list"}}list:{{len .bookinstance_list}}{{end}}
{{define "bookinstance_detail"}}detail:{{.bookinstance.Imprint}}{{end}}
{{define "bookinstance_form"}}form:{{.title}}:books={{len .book_list}}{{range .errors}}|{{.Message}}{{end}}{{end}}
{{define "bookinstance_delete"}}confirm:{{.bookinstance.ID}}{{end}}
{{define "error"}}error:{{.message}}{{end}}
`))
	router.SetHTMLTemplate(tmpl)

	h := NewBookInstanceHandler(svc)
	router.GET("/catalog/bookinstances", h.List)
	router.GET("/catalog/bookinstance/create", h.CreateForm)
	router.POST("/catalog/bookinstance/create", h.Create)
	router.GET("/catalog/bookinstance/:id", h.Detail)
	router.GET("/catalog/bookinstance/:id/update", h.UpdateForm)
	router.POST("/catalog/bookinstance/:id/update", h.Update)
	router.GET("/catalog/bookinstance/:id/delete", h.DeleteForm)
	router.POST("/catalog/bookinstance/:id/delete", h.Delete)
	return router
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDeleteFormAbsentRecordRedirectsToList(t *testing.T) {
	router := testRouter(newFakeInstanceService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/catalog/bookinstance/"+uuid.NewString()+"/delete", nil))

	// Nothing to confirm: straight back to the list instead of a 404.
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))
}

func TestDeleteFormRendersConfirmation(t *testing.T) {
	svc := newFakeInstanceService()
	id := uuid.New()
	svc.instances[id] = &model.BookInstance{ID: id, Imprint: "Gollancz, 2007"}
	router := testRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/catalog/bookinstance/"+id.String()+"/delete", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestDeletePostUsesFormFieldAndRedirects(t *testing.T) {
	svc := newFakeInstanceService()
	id := uuid.New()
	svc.instances[id] = &model.BookInstance{ID: id, Imprint: "Gollancz, 2007"}
	router := testRouter(svc)

	v := url.Values{}
	v.Set("bookinstanceid", id.String())
	// The path id is advisory; the form field names the record.
	w := postForm(router, "/catalog/bookinstance/"+uuid.NewString()+"/delete", v)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))
	require.Len(t, svc.deleted, 1)
	assert.Equal(t, id, svc.deleted[0])
}

func TestDeletePostAbsentRecordStillRedirects(t *testing.T) {
	svc := newFakeInstanceService()
	router := testRouter(svc)

	v := url.Values{}
	v.Set("bookinstanceid", uuid.NewString())
	w := postForm(router, "/catalog/bookinstance/"+uuid.NewString()+"/delete", v)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))
}

func TestCreateFormLoadsBookSelector(t *testing.T) {
	svc := newFakeInstanceService()
	svc.titles = []bookmodel.Book{{Title: "A"}, {Title: "B"}}
	router := testRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/bookinstance/create", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "books=2")
}

func TestCreateInvalidStatusReRenders(t *testing.T) {
	svc := newFakeInstanceService()
	router := testRouter(svc)

	v := url.Values{}
	v.Set("book", uuid.NewString())
	v.Set("imprint", "Gollancz, 2007")
	v.Set("status", "Lost")
	w := postForm(router, "/catalog/bookinstance/create", v)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")
	assert.Empty(t, svc.instances)
}

func TestCreateValidRedirectsToDetail(t *testing.T) {
	svc := newFakeInstanceService()
	router := testRouter(svc)

	v := url.Values{}
	v.Set("book", uuid.NewString())
	v.Set("imprint", "Gollancz, 2007")
	v.Set("status", "Available")
	v.Set("due_back", "2024-03-01")
	w := postForm(router, "/catalog/bookinstance/create", v)

	require.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/catalog/bookinstance/"))
	assert.Len(t, svc.instances, 1)
}
