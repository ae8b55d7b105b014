package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-services/internal/domains/catalog/model"
	"bookstore-services/internal/domains/catalog/service"
	"bookstore-services/internal/shared/response"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// ListBooks handles GET /books?skip&limit&search
func (h *BookHandler) ListBooks(c *gin.Context) {
	var query model.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := query.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid query parameters", err)
		return
	}

	result, err := h.bookService.ListBooks(c.Request.Context(), query)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusOK, result)
}

// GetBook handles GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.bookService.GetBook(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusOK, book)
}

// CreateBook handles POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusCreated, book)
}

// UpdateBook handles PUT /books/:id (partial update)
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, http.StatusOK, book)
}

// DeleteBook handles DELETE /books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.bookService.DeleteBook(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.MessageResponse(c, http.StatusOK, fmt.Sprintf("Book %d deleted successfully", id))
}

func (h *BookHandler) handleServiceError(c *gin.Context, err error) {
	var isbnConflict *model.ISBNConflictError

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	case errors.As(err, &isbnConflict):
		response.BadRequest(c, isbnConflict.Error())
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Book service error")
		response.InternalServerError(c, "Internal server error")
	}
}

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Book ID must be a positive integer")
		return 0, false
	}
	return id, true
}
