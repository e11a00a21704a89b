package book

import (
	"context"

	"bookproject/internal/platform/openlibrary"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, userID, id string) (Book, error)
	List(ctx context.Context, userID string, q Query) ([]Book, int, error)
	UpdateShelf(ctx context.Context, userID, id, shelfID string) error
	UpdateCustomShelf(ctx context.Context, userID, id string, customShelfID *string) error
	Delete(ctx context.Context, userID, id string) error
}

// ShelfLocator maps shelf names to shelf record IDs for one user.
type ShelfLocator interface {
	PredefinedShelfID(ctx context.Context, userID, name string) (string, error)
	CustomShelfID(ctx context.Context, userID, name string) (string, error)
}

// Catalog looks up book metadata by ISBN.
type Catalog interface {
	GetBookByISBN(ctx context.Context, isbn string) (*openlibrary.BookDetails, error)
}
