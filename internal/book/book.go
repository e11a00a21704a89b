package book

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a book is not found for the requesting user.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidInput is returned when a book payload fails domain checks.
	ErrInvalidInput = errors.New("invalid book")
	// ErrImportUnavailable is returned by Import when no catalog is configured.
	ErrImportUnavailable = errors.New("book import is not configured")
)

// Author is the optional author of a book.
type Author struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins first and last name, skipping empty parts.
func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Book represents a book owned by one user. It always sits on exactly one
// predefined shelf and optionally on one custom shelf.
type Book struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn,omitempty"`
	Author        *Author   `json:"author,omitempty"`
	PageCount     *int      `json:"page_count,omitempty"`
	ShelfID       string    `json:"shelf_id"`
	CustomShelfID *string   `json:"custom_shelf_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Query defines pagination for listing a user's books.
type Query struct {
	Limit  int
	Offset int
}

// Set is a collection of stored books keyed by book ID.
type Set map[string]Book

// NewSet returns a set holding the given books. Later duplicates replace
// earlier ones and books without an ID are dropped.
func NewSet(books ...Book) Set {
	s := make(Set, len(books))
	for _, b := range books {
		s.Add(b)
	}
	return s
}

// Add stores b under its ID. A book with an empty ID has not been persisted
// yet and is ignored.
func (s Set) Add(b Book) {
	if b.ID == "" {
		return
	}
	s[b.ID] = b
}

// Union adds every book of other to s.
func (s Set) Union(other Set) {
	for _, b := range other {
		s.Add(b)
	}
}

func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the books ordered by title, then ID.
func (s Set) Sorted() []Book {
	out := make([]Book, 0, len(s))
	for _, b := range s {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out
}
