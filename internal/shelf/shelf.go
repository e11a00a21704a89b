package shelf

import (
	"errors"
	"time"

	"bookproject/internal/book"
)

var (
	// ErrUnknownShelf is returned for names that match no predefined shelf.
	ErrUnknownShelf = errors.New("unknown shelf")
	// ErrNotFound is returned when a shelf record does not exist for the user.
	ErrNotFound = errors.New("shelf not found")
	// ErrAlreadyExists is returned when a custom shelf name is taken.
	ErrAlreadyExists = errors.New("shelf already exists")
	// ErrReservedName is returned when a custom shelf would shadow a
	// predefined shelf or the AllBooks pseudo shelf.
	ErrReservedName = errors.New("shelf name is reserved")
	ErrInvalidName  = errors.New("invalid shelf name")
)

// Shelf is one of a user's predefined shelves with the books on it.
type Shelf struct {
	ID        string
	UserID    string
	Kind      Kind
	Books     book.Set
	CreatedAt time.Time
}

func (s Shelf) Name() string {
	return s.Kind.String()
}

// CustomShelf is a user-created shelf. Books sit on it in addition to their
// predefined shelf.
type CustomShelf struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Books     book.Set  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
