package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/bookinstance/model"
	"library-catalog/internal/domains/bookinstance/service"
	"library-catalog/internal/shared/response"
)

// BookInstanceHandler drives the copy (book instance) workflows including
// the only implemented delete flow.
type BookInstanceHandler struct {
	service service.ServiceInterface
}

func NewBookInstanceHandler(svc service.ServiceInterface) *BookInstanceHandler {
	return &BookInstanceHandler{service: svc}
}

// List handles GET /catalog/bookinstances.
func (h *BookInstanceHandler) List(c *gin.Context) {
	instances, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_list", gin.H{
		"title":             "Book Instance List",
		"bookinstance_list": instances,
	})
}

// Detail handles GET /catalog/bookinstance/:id.
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Book copy not found")
		return
	}

	instance, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookInstanceNotFound) {
			response.NotFound(c, "Book copy not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.HTML(http.StatusOK, "bookinstance_detail", gin.H{
		"title":        "Book Instance " + instance.ID.String(),
		"bookinstance": instance,
	})
}

// CreateForm handles GET /catalog/bookinstance/create. The form needs the
// full list of book titles for its selector.
func (h *BookInstanceHandler) CreateForm(c *gin.Context) {
	books, err := h.service.BookTitles(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form", gin.H{
		"title":       "Create BookInstance",
		"book_list":   books,
		"status_list": model.Statuses(),
	})
}

// Create handles POST /catalog/bookinstance/create.
func (h *BookInstanceHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Bad form data")
		return
	}

	f, errs := model.ValidateForm(c.Request.PostForm)
	if !errs.Empty() {
		books, err := h.service.BookTitles(c.Request.Context())
		if err != nil {
			response.Internal(c, err)
			return
		}
		c.HTML(http.StatusOK, "bookinstance_form", gin.H{
			"title":        "Create BookInstance",
			"book_list":    books,
			"status_list":  model.Statuses(),
			"bookinstance": f,
			"errors":       errs,
		})
		return
	}

	instance, err := h.service.Create(c.Request.Context(), f)
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.Redirect(http.StatusFound, instance.URL())
}

// UpdateForm handles GET /catalog/bookinstance/:id/update.
func (h *BookInstanceHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Book copy not found")
		return
	}

	instance, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookInstanceNotFound) {
			response.NotFound(c, "Book copy not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	books, err := h.service.BookTitles(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form", gin.H{
		"title":        "Update BookInstance",
		"book_list":    books,
		"status_list":  model.Statuses(),
		"bookinstance": model.FormFromInstance(instance),
	})
}

// Update handles POST /catalog/bookinstance/:id/update.
func (h *BookInstanceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Book copy not found")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Bad form data")
		return
	}

	f, errs := model.ValidateForm(c.Request.PostForm)
	if !errs.Empty() {
		books, berr := h.service.BookTitles(c.Request.Context())
		if berr != nil {
			response.Internal(c, berr)
			return
		}
		c.HTML(http.StatusOK, "bookinstance_form", gin.H{
			"title":        "Update BookInstance",
			"book_list":    books,
			"status_list":  model.Statuses(),
			"bookinstance": f,
			"errors":       errs,
		})
		return
	}

	instance, err := h.service.Update(c.Request.Context(), id, f)
	if err != nil {
		if errors.Is(err, model.ErrBookInstanceNotFound) {
			response.NotFound(c, "Book copy not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.Redirect(http.StatusFound, instance.URL())
}

// DeleteForm handles GET /catalog/bookinstance/:id/delete. An id that no
// longer resolves redirects straight back to the list: there is nothing
// to confirm.
func (h *BookInstanceHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}

	instance, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookInstanceNotFound) {
			c.Redirect(http.StatusFound, "/catalog/bookinstances")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.HTML(http.StatusOK, "bookinstance_delete", gin.H{
		"title":        "Delete BookInstance",
		"bookinstance": instance,
	})
}

// Delete handles POST /catalog/bookinstance/:id/delete. The id to delete
// comes from the form body, matching what the confirmation page submits.
// Deleting an already-gone record is a no-op; either way the client lands
// back on the list.
func (h *BookInstanceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.PostForm("bookinstanceid"))
	if err != nil {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Internal(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/catalog/bookinstances")
}
