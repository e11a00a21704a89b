package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=user

// Repository stores users. Create also provisions the predefined shelves and
// leaves nothing behind when it fails.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
