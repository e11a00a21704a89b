package auth

import (
	"context"

	"bookproject/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=auth

// UserFinder looks up login candidates.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}
