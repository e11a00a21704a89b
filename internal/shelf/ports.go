package shelf

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=shelf

// Store reads a user's predefined shelves together with their books.
type Store interface {
	// FindAllPredefined returns the shelves in declaration order.
	FindAllPredefined(ctx context.Context, userID string) ([]Shelf, error)
	// FindByKind returns ErrNotFound when the user has no such shelf.
	FindByKind(ctx context.Context, userID string, kind Kind) (Shelf, error)
}

// Repository is the full shelf storage contract.
type Repository interface {
	Store
	EnsurePredefined(ctx context.Context, userID string) error
	CreateCustom(ctx context.Context, s *CustomShelf) error
	ListCustom(ctx context.Context, userID string) ([]CustomShelf, error)
	FindCustomByName(ctx context.Context, userID, name string) (CustomShelf, error)
	DeleteCustom(ctx context.Context, userID, id string) error
}
