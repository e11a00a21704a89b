package shelf

import (
	"errors"
	"net/http"

	"bookproject/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type predefinedShelfResponse struct {
	Kind      Kind   `json:"kind"`
	Name      string `json:"name"`
	BookCount int    `json:"book_count"`
}

type shelvesResponse struct {
	AllBooks   string                    `json:"all_books"`
	Predefined []predefinedShelfResponse `json:"predefined"`
	Custom     []CustomShelf             `json:"custom"`
}

// List handles GET /shelves
// @Summary List shelves
// @Description Predefined shelves in fixed order, then the user's custom shelves
// @Tags shelves
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /shelves [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	predefined, err := h.service.ListPredefined(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	custom, err := h.service.ListCustom(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := shelvesResponse{
		AllBooks:   AllBooks,
		Predefined: make([]predefinedShelfResponse, 0, len(predefined)),
		Custom:     custom,
	}
	if resp.Custom == nil {
		resp.Custom = []CustomShelf{}
	}
	for _, s := range predefined {
		resp.Predefined = append(resp.Predefined, predefinedShelfResponse{
			Kind:      s.Kind,
			Name:      s.Name(),
			BookCount: s.Books.Len(),
		})
	}

	httpx.JSONSuccess(w, r, resp, nil)
}

// BooksInShelf handles GET /shelves/{name}/books
// @Summary Books on a shelf
// @Description Books on the named predefined shelf ("To read", "Reading", "Read", "Did not finish") or on "All books"
// @Tags shelves
// @Produce json
// @Security Bearer
// @Param name path string true "Shelf name, case-insensitive"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /shelves/{name}/books [get]
func (h *HTTPHandler) BooksInShelf(w http.ResponseWriter, r *http.Request) {
	sel := ParseSelection(r.PathValue("name"))

	books, err := h.service.Resolver().BooksIn(r.Context(), httpx.UserIDFrom(r), sel)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, books.Sorted(), map[string]any{
		"shelf": sel.Name(),
		"total": books.Len(),
	})
}

type createCustomReq struct {
	Name string `json:"name" validate:"required,max=64"`
}

// CreateCustom handles POST /shelves/custom
// @Summary Create custom shelf
// @Tags shelves
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body createCustomReq true "Shelf name"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /shelves/custom [post]
func (h *HTTPHandler) CreateCustom(w http.ResponseWriter, r *http.Request) {
	var req createCustomReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	cs, err := h.service.CreateCustom(r.Context(), httpx.UserIDFrom(r), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, cs)
}

// BooksInCustomShelf handles GET /shelves/custom/{name}/books
// @Summary Books on a custom shelf
// @Tags shelves
// @Produce json
// @Security Bearer
// @Param name path string true "Custom shelf name, case-insensitive"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /shelves/custom/{name}/books [get]
func (h *HTTPHandler) BooksInCustomShelf(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	books, err := h.service.BooksInCustomShelf(r.Context(), httpx.UserIDFrom(r), name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, books.Sorted(), map[string]any{
		"shelf": name,
		"total": books.Len(),
	})
}

// DeleteCustom handles DELETE /shelves/custom/{id}
// @Summary Delete custom shelf
// @Description Books on the shelf keep their predefined shelf
// @Tags shelves
// @Security Bearer
// @Param id path string true "Custom shelf ID"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /shelves/custom/{id} [delete]
func (h *HTTPHandler) DeleteCustom(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustom(r.Context(), httpx.UserIDFrom(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// WriteError maps shelf errors onto the JSON error envelope. It is shared
// with handlers that resolve shelf names.
func WriteError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, ErrUnknownShelf):
		httpx.JSONError(w, r, http.StatusNotFound, "UNKNOWN_SHELF", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Shelf not found", nil)
	case errors.Is(err, ErrReservedName):
		httpx.JSONError(w, r, http.StatusBadRequest, "RESERVED_NAME", err.Error(), nil)
	case errors.Is(err, ErrInvalidName):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, ErrAlreadyExists):
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Shelf already exists", nil)
	default:
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if !WriteError(w, r, err) {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
