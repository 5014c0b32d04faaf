package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/service"
	"library-catalog/internal/shared/response"
)

// BookHandler serves the catalog home page and the book read pages.
type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// Index handles GET /catalog/ with record counts per entity.
func (h *BookHandler) Index(c *gin.Context) {
	counts, err := h.service.Home(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusOK, "index", gin.H{
			"title": "Local Library Home",
			"error": err.Error(),
		})
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title": "Local Library Home",
		"data":  counts,
	})
}

// List handles GET /catalog/books.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

// Detail handles GET /catalog/book/:id.
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Book not found")
		return
	}

	book, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
		} else {
			response.Internal(c, err)
		}
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"title": book.Title,
		"book":  book,
	})
}
