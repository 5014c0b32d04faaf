package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/shared/response"
)

// AuthorHandler drives the author workflows: list, detail, create and
// update. Delete is a stub, as in the reference application.
type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List handles GET /catalog/authors.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// Detail handles GET /catalog/author/:id.
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Author not found")
		return
	}

	author, books, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       author,
		"author_books": books,
	})
}

// CreateForm handles GET /catalog/author/create.
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"title": "Create Author",
	})
}

// Create handles POST /catalog/author/create. On a validation failure the
// form re-renders with the sanitized values and the full failure list;
// nothing is persisted.
func (h *AuthorHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Bad form data")
		return
	}

	f, errs := model.ValidateForm(c.Request.PostForm)
	if !errs.Empty() {
		c.HTML(http.StatusOK, "author_form", gin.H{
			"title":  "Create Author",
			"author": f,
			"errors": errs,
		})
		return
	}

	author, err := h.service.Create(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.Redirect(http.StatusFound, author.URL())
}

// UpdateForm handles GET /catalog/author/:id/update.
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Author not found")
		return
	}

	author, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.HTML(http.StatusOK, "author_form", gin.H{
		"title":  "Update Author",
		"author": model.FormFromAuthor(author),
	})
}

// Update handles POST /catalog/author/:id/update. The re-rendered form on
// failure carries the submitted sanitized values, not the stored ones.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Author not found")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Bad form data")
		return
	}

	f, errs := model.ValidateForm(c.Request.PostForm)
	if !errs.Empty() {
		c.HTML(http.StatusOK, "author_form", gin.H{
			"title":  "Update Author",
			"author": f,
			"errors": errs,
		})
		return
	}

	author, err := h.service.Update(c.Request.Context(), id, f)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.Redirect(http.StatusFound, author.URL())
}

// DeleteForm handles GET /catalog/author/:id/delete. Not implemented.
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	c.String(http.StatusOK, "NOT IMPLEMENTED: Author delete GET")
}

// Delete handles POST /catalog/author/:id/delete. Not implemented.
func (h *AuthorHandler) Delete(c *gin.Context) {
	c.String(http.StatusOK, "NOT IMPLEMENTED: Author delete POST")
}
