package main

import (
	"context"
	"net/http"
	"time"

	"bookproject/internal/auth"
	"bookproject/internal/book"
	"bookproject/internal/httpx"
	"bookproject/internal/shelf"
	"bookproject/internal/user"
)

type routes struct {
	users   *user.HTTPHandler
	auth    *auth.HTTPHandler
	shelves *shelf.HTTPHandler
	books   *book.HTTPHandler
	ready   func(ctx context.Context) error
}

func newRouter(h routes, jwtSecret string) *http.ServeMux {
	router := http.NewServeMux()
	protected := httpx.AuthMiddleware(jwtSecret)
	handle := func(pattern string, fn http.HandlerFunc) {
		router.Handle(pattern, protected(fn))
	}

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /users/register", h.users.RegisterUser)
	router.HandleFunc("POST /users/login", h.auth.Login)
	handle("GET /me", h.users.GetCurrentUser)

	handle("GET /shelves", h.shelves.List)
	handle("GET /shelves/{name}/books", h.shelves.BooksInShelf)
	handle("POST /shelves/custom", h.shelves.CreateCustom)
	handle("GET /shelves/custom/{name}/books", h.shelves.BooksInCustomShelf)
	handle("DELETE /shelves/custom/{id}", h.shelves.DeleteCustom)

	handle("POST /books", h.books.Create)
	handle("POST /books/import", h.books.Import)
	handle("GET /books", h.books.List)
	handle("GET /books/{id}", h.books.Get)
	handle("PATCH /books/{id}/shelf", h.books.Move)
	handle("PATCH /books/{id}/custom-shelf", h.books.SetCustomShelf)
	handle("DELETE /books/{id}", h.books.Delete)

	return router
}
