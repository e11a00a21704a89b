package auth

import (
	"context"
	"errors"
	"time"

	"bookproject/internal/platform/crypto"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

// Token is an issued bearer token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Service struct {
	secret string
	ttl    time.Duration
	users  UserFinder
}

func NewService(secret string, ttl time.Duration, users UserFinder) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		users:  users,
	}
}

// Login checks the credentials and issues an access token. Unknown emails and
// wrong passwords both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !crypto.VerifyPassword(u.Password, password) {
		return Token{}, ErrUnauthorized
	}

	accessToken, _, err := crypto.GenerateToken(s.secret, u.ID, u.Role, s.ttl)
	if err != nil {
		return Token{}, err
	}

	return Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.ttl.Seconds()),
	}, nil
}
