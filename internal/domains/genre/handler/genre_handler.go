package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/genre/model"
	"library-catalog/internal/domains/genre/service"
	"library-catalog/internal/shared/response"
)

// GenreHandler drives the genre workflows. Create consults the duplicate
// resolver: submitting an existing name redirects to the existing record.
type GenreHandler struct {
	service service.ServiceInterface
}

func NewGenreHandler(svc service.ServiceInterface) *GenreHandler {
	return &GenreHandler{service: svc}
}

// List handles GET /catalog/genres.
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

// Detail handles GET /catalog/genre/:id.
func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Genre not found")
		return
	}

	genre, books, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			response.NotFound(c, "Genre not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       genre,
		"genre_books": books,
	})
}

// CreateForm handles GET /catalog/genre/create.
func (h *GenreHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form", gin.H{
		"title": "Create Genre",
	})
}

// Create handles POST /catalog/genre/create. A name that matches an
// existing genre case-insensitively redirects to that record instead of
// inserting a second one.
func (h *GenreHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Bad form data")
		return
	}

	f, errs := model.ValidateForm(c.Request.PostForm)
	if !errs.Empty() {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"title":  "Create Genre",
			"genre":  f,
			"errors": errs,
		})
		return
	}

	genre, _, err := h.service.Create(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.Redirect(http.StatusFound, genre.URL())
}

// UpdateForm handles GET /catalog/genre/:id/update.
func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Genre not found")
		return
	}

	genre, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			response.NotFound(c, "Genre not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.HTML(http.StatusOK, "genre_form", gin.H{
		"title": "Update Genre",
		"genre": model.FormFromGenre(genre),
	})
}

// Update handles POST /catalog/genre/:id/update.
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Genre not found")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Bad form data")
		return
	}

	f, errs := model.ValidateForm(c.Request.PostForm)
	if !errs.Empty() {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"title":  "Update Genre",
			"genre":  f,
			"errors": errs,
		})
		return
	}

	genre, err := h.service.Update(c.Request.Context(), id, f)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			response.NotFound(c, "Genre not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.Redirect(http.StatusFound, genre.URL())
}

// DeleteForm handles GET /catalog/genre/:id/delete. Not implemented.
func (h *GenreHandler) DeleteForm(c *gin.Context) {
	c.String(http.StatusOK, "NOT IMPLEMENTED: Genre delete GET")
}

// Delete handles POST /catalog/genre/:id/delete. Not implemented.
func (h *GenreHandler) Delete(c *gin.Context) {
	c.String(http.StatusOK, "NOT IMPLEMENTED: Genre delete POST")
}
