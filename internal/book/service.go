package book

import (
	"context"
	"fmt"
	"strings"
)

// CreateInput carries the fields needed to add a book to a shelf.
type CreateInput struct {
	Title     string
	ISBN      string
	Author    *Author
	PageCount *int
	Shelf     string
}

// Service provides book-related business logic.
type Service struct {
	repo    Repository
	shelves ShelfLocator
	catalog Catalog
}

// NewService creates a new book service. catalog may be nil, in which case
// Import is unavailable.
func NewService(repo Repository, shelves ShelfLocator, catalog Catalog) *Service {
	return &Service{repo: repo, shelves: shelves, catalog: catalog}
}

// Create adds a book to the named predefined shelf of the user.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Book, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Book{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	shelfID, err := s.shelves.PredefinedShelfID(ctx, userID, in.Shelf)
	if err != nil {
		return Book{}, err
	}

	b := &Book{
		UserID:    userID,
		Title:     title,
		ISBN:      strings.TrimSpace(in.ISBN),
		Author:    normalizeAuthor(in.Author),
		PageCount: in.PageCount,
		ShelfID:   shelfID,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Book{}, err
	}
	return *b, nil
}

// Import fetches metadata for isbn and adds the book to the named shelf.
func (s *Service) Import(ctx context.Context, userID, isbn, shelfName string) (Book, error) {
	if s.catalog == nil {
		return Book{}, ErrImportUnavailable
	}

	details, err := s.catalog.GetBookByISBN(ctx, isbn)
	if err != nil {
		return Book{}, err
	}

	in := CreateInput{
		Title: details.Title,
		ISBN:  isbn,
		Shelf: shelfName,
	}
	if len(details.Authors) > 0 {
		in.Author = splitAuthorName(details.Authors[0].Name)
	}
	if details.NumberOfPages > 0 {
		pages := details.NumberOfPages
		in.PageCount = &pages
	}
	return s.Create(ctx, userID, in)
}

// Get returns one of the user's books.
func (s *Service) Get(ctx context.Context, userID, id string) (Book, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List returns a page of the user's books together with the total count.
func (s *Service) List(ctx context.Context, userID string, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, userID, q)
}

// Move puts the book on the named predefined shelf, replacing its previous one.
func (s *Service) Move(ctx context.Context, userID, id, shelfName string) (Book, error) {
	shelfID, err := s.shelves.PredefinedShelfID(ctx, userID, shelfName)
	if err != nil {
		return Book{}, err
	}
	if err := s.repo.UpdateShelf(ctx, userID, id, shelfID); err != nil {
		return Book{}, err
	}
	return s.repo.GetByID(ctx, userID, id)
}

// SetCustomShelf puts the book on the named custom shelf. An empty name
// removes it from its custom shelf.
func (s *Service) SetCustomShelf(ctx context.Context, userID, id, name string) (Book, error) {
	var customID *string
	if name = strings.TrimSpace(name); name != "" {
		shelfID, err := s.shelves.CustomShelfID(ctx, userID, name)
		if err != nil {
			return Book{}, err
		}
		customID = &shelfID
	}
	if err := s.repo.UpdateCustomShelf(ctx, userID, id, customID); err != nil {
		return Book{}, err
	}
	return s.repo.GetByID(ctx, userID, id)
}

// Delete removes one of the user's books.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func normalizeAuthor(a *Author) *Author {
	if a == nil {
		return nil
	}
	out := Author{
		FirstName: strings.TrimSpace(a.FirstName),
		LastName:  strings.TrimSpace(a.LastName),
	}
	if out.FirstName == "" && out.LastName == "" {
		return nil
	}
	return &out
}

// splitAuthorName treats the last word as the last name.
func splitAuthorName(name string) *Author {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return &Author{LastName: parts[0]}
	default:
		return &Author{
			FirstName: strings.Join(parts[:len(parts)-1], " "),
			LastName:  parts[len(parts)-1],
		}
	}
}
