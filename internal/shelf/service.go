package shelf

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"bookproject/internal/book"
)

const maxCustomNameLength = 64

// Service provides shelf business logic on top of a Repository.
type Service struct {
	repo     Repository
	resolver *Resolver
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, resolver: NewResolver(repo)}
}

func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// EnsurePredefined creates any predefined shelf the user is missing. It is
// safe to call repeatedly.
func (s *Service) EnsurePredefined(ctx context.Context, userID string) error {
	return s.repo.EnsurePredefined(ctx, userID)
}

func (s *Service) ListPredefined(ctx context.Context, userID string) ([]Shelf, error) {
	return s.repo.FindAllPredefined(ctx, userID)
}

func (s *Service) BooksInShelf(ctx context.Context, userID, name string) (book.Set, error) {
	return s.resolver.BooksInShelf(ctx, userID, name)
}

// PredefinedShelfID returns the record ID of the named predefined shelf.
func (s *Service) PredefinedShelfID(ctx context.Context, userID, name string) (string, error) {
	sh, err := s.resolver.FindByName(ctx, userID, name)
	if err != nil {
		return "", err
	}
	return sh.ID, nil
}

// CustomShelfID returns the record ID of the named custom shelf.
func (s *Service) CustomShelfID(ctx context.Context, userID, name string) (string, error) {
	cs, err := s.repo.FindCustomByName(ctx, userID, strings.TrimSpace(name))
	if err != nil {
		return "", err
	}
	return cs.ID, nil
}

func (s *Service) CreateCustom(ctx context.Context, userID, name string) (CustomShelf, error) {
	name = strings.TrimSpace(name)
	if err := validateCustomName(name); err != nil {
		return CustomShelf{}, err
	}

	cs := &CustomShelf{UserID: userID, Name: name}
	if err := s.repo.CreateCustom(ctx, cs); err != nil {
		return CustomShelf{}, err
	}
	return *cs, nil
}

func (s *Service) ListCustom(ctx context.Context, userID string) ([]CustomShelf, error) {
	return s.repo.ListCustom(ctx, userID)
}

func (s *Service) BooksInCustomShelf(ctx context.Context, userID, name string) (book.Set, error) {
	cs, err := s.repo.FindCustomByName(ctx, userID, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	out := book.NewSet()
	out.Union(cs.Books)
	return out, nil
}

func (s *Service) DeleteCustom(ctx context.Context, userID, id string) error {
	return s.repo.DeleteCustom(ctx, userID, id)
}

func validateCustomName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > maxCustomNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidName, maxCustomNameLength)
	}
	if IsPredefined(name) || ParseSelection(name).IsAll() {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}
