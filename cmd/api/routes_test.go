package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookproject/internal/auth"
	"bookproject/internal/book"
	"bookproject/internal/shelf"
	"bookproject/internal/testutil"
	"bookproject/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const testSecret = "routing-secret"

type testRouter struct {
	mux     *http.ServeMux
	shelves *shelf.MockRepository
	books   *book.MockRepository
	token   string
}

func newTestRouter(t *testing.T, ready func(context.Context) error) testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	shelfRepo := shelf.NewMockRepository(ctrl)
	bookRepo := book.NewMockRepository(ctrl)
	shelfService := shelf.NewService(shelfRepo)
	userService := user.NewService(user.NewMockRepository(ctrl))

	mux := newRouter(routes{
		users:   user.NewHTTPHandler(userService),
		auth:    auth.NewHTTPHandler(auth.NewService(testSecret, time.Hour, userService)),
		shelves: shelf.NewHTTPHandler(shelfService),
		books:   book.NewHTTPHandler(book.NewService(bookRepo, shelfService, nil), shelf.WriteError),
		ready:   ready,
	}, testSecret)

	token := testutil.GenerateTestToken(t, testSecret, "u1", user.RoleUser)
	return testRouter{mux: mux, shelves: shelfRepo, books: bookRepo, token: token}
}

func (tr testRouter) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	token := ""
	if authed {
		token = tr.token
	}
	w := httptest.NewRecorder()
	tr.mux.ServeHTTP(w, testutil.NewRequestWithAuth(method, target, body, token))
	return w
}

func TestRouter_Probes(t *testing.T) {
	tr := newTestRouter(t, func(context.Context) error { return errors.New("down") })

	assert.Equal(t, http.StatusOK, tr.do(http.MethodGet, "/healthz", "", false).Code)
	assert.Equal(t, http.StatusServiceUnavailable, tr.do(http.MethodGet, "/readyz", "", false).Code)
}

func TestRouter_ShelfRoutes(t *testing.T) {
	tr := newTestRouter(t, func(context.Context) error { return nil })

	t.Run("requires token", func(t *testing.T) {
		w := tr.do(http.MethodGet, "/shelves/Read/books", "", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("named shelf", func(t *testing.T) {
		tr.shelves.EXPECT().FindByKind(gomock.Any(), "u1", shelf.KindRead).Return(shelf.Shelf{
			Kind:  shelf.KindRead,
			Books: book.NewSet(book.Book{ID: "b1", Title: "Beloved"}),
		}, nil)

		w := tr.do(http.MethodGet, "/shelves/read/books", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Beloved")
	})

	t.Run("escaped all books", func(t *testing.T) {
		var empty []shelf.Shelf
		for _, k := range shelf.Kinds() {
			empty = append(empty, shelf.Shelf{Kind: k, Books: book.NewSet()})
		}
		tr.shelves.EXPECT().FindAllPredefined(gomock.Any(), "u1").Return(empty, nil)

		w := tr.do(http.MethodGet, "/shelves/All%20books/books", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":0`)
	})

	t.Run("all books without shelf records", func(t *testing.T) {
		tr.shelves.EXPECT().FindAllPredefined(gomock.Any(), "u1").Return(nil, nil)

		w := tr.do(http.MethodGet, "/shelves/All%20books/books", "", true)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"NOT_FOUND"`)
	})

	t.Run("unknown shelf", func(t *testing.T) {
		w := tr.do(http.MethodGet, "/shelves/Wishlist/books", "", true)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "UNKNOWN_SHELF")
	})

	t.Run("custom shelf books", func(t *testing.T) {
		tr.shelves.EXPECT().FindCustomByName(gomock.Any(), "u1", "Favourites").Return(shelf.CustomShelf{ID: "c1"}, nil)

		w := tr.do(http.MethodGet, "/shelves/custom/Favourites/books", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		w := tr.do(http.MethodPut, "/shelves", "", true)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestRouter_BookRoutes(t *testing.T) {
	tr := newTestRouter(t, func(context.Context) error { return nil })

	t.Run("unknown shelf on create maps through shelf errors", func(t *testing.T) {
		w := tr.do(http.MethodPost, "/books", `{"title":"Dune","shelf":"Wishlist"}`, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "UNKNOWN_SHELF")
	})

	t.Run("delete", func(t *testing.T) {
		tr.books.EXPECT().Delete(gomock.Any(), "u1", "b1").Return(nil)

		w := tr.do(http.MethodDelete, "/books/b1", "", true)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("move", func(t *testing.T) {
		tr.shelves.EXPECT().FindByKind(gomock.Any(), "u1", shelf.KindReading).Return(shelf.Shelf{ID: "s-reading", Kind: shelf.KindReading}, nil)
		tr.books.EXPECT().UpdateShelf(gomock.Any(), "u1", "b1", "s-reading").Return(nil)
		tr.books.EXPECT().GetByID(gomock.Any(), "u1", "b1").Return(book.Book{ID: "b1", ShelfID: "s-reading"}, nil)

		w := tr.do(http.MethodPatch, "/books/b1/shelf", `{"shelf":"Reading"}`, true)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
