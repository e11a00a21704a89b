package book

import (
	"errors"
	"net/http"
	"strconv"

	"bookproject/internal/httpx"
	"bookproject/internal/platform/openlibrary"
)

// ErrorWriter writes the response for errors raised outside this package,
// such as shelf lookups. It reports whether it handled err.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error) bool

type HTTPHandler struct {
	service     *Service
	shelfErrors ErrorWriter
}

func NewHTTPHandler(service *Service, shelfErrors ErrorWriter) *HTTPHandler {
	return &HTTPHandler{service: service, shelfErrors: shelfErrors}
}

type authorReq struct {
	FirstName string `json:"first_name" validate:"max=255"`
	LastName  string `json:"last_name" validate:"max=255"`
}

type createBookReq struct {
	Title     string     `json:"title" validate:"required,max=500"`
	ISBN      string     `json:"isbn" validate:"omitempty,isbn"`
	Author    *authorReq `json:"author"`
	PageCount *int       `json:"page_count" validate:"omitempty,min=1"`
	Shelf     string     `json:"shelf" validate:"required"`
}

// Create handles POST /books
// @Summary Add book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createBookReq true "Book"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	in := CreateInput{
		Title:     req.Title,
		ISBN:      req.ISBN,
		PageCount: req.PageCount,
		Shelf:     req.Shelf,
	}
	if req.Author != nil {
		in.Author = &Author{FirstName: req.Author.FirstName, LastName: req.Author.LastName}
	}

	b, err := h.service.Create(r.Context(), httpx.UserIDFrom(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, b)
}

type importBookReq struct {
	ISBN  string `json:"isbn" validate:"required,isbn"`
	Shelf string `json:"shelf" validate:"required"`
}

// Import handles POST /books/import
// @Summary Import book from Open Library
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body importBookReq true "ISBN and shelf"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/import [post]
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importBookReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	b, err := h.service.Import(r.Context(), httpx.UserIDFrom(r), req.ISBN, req.Shelf)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, b)
}

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Security Bearer
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	books, total, err := h.service.List(r.Context(), httpx.UserIDFrom(r), Query{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSONSuccess(w, r, books, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /books/{id}
// @Summary Get book
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

type moveBookReq struct {
	Shelf string `json:"shelf" validate:"required"`
}

// Move handles PATCH /books/{id}/shelf
// @Summary Move book to another predefined shelf
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Param request body moveBookReq true "Target shelf"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id}/shelf [patch]
func (h *HTTPHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveBookReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	b, err := h.service.Move(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"), req.Shelf)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

type customShelfReq struct {
	Name string `json:"name" validate:"max=64"`
}

// SetCustomShelf handles PATCH /books/{id}/custom-shelf
// @Summary Put book on a custom shelf
// @Description An empty name removes the book from its custom shelf
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Param request body customShelfReq true "Custom shelf name"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id}/custom-shelf [patch]
func (h *HTTPHandler) SetCustomShelf(w http.ResponseWriter, r *http.Request) {
	var req customShelfReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	b, err := h.service.SetCustomShelf(r.Context(), httpx.UserIDFrom(r), r.PathValue("id"), req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Delete handles DELETE /books/{id}
// @Summary Delete book
// @Tags books
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrInvalidInput):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, openlibrary.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "ISBN_NOT_FOUND", "ISBN not found on Open Library", nil)
	case errors.Is(err, ErrImportUnavailable):
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "IMPORT_UNAVAILABLE", err.Error(), nil)
	default:
		if h.shelfErrors != nil && h.shelfErrors(w, r, err) {
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
