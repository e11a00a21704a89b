package shelf

import (
	"context"
	"fmt"

	"bookproject/internal/book"
)

// Resolver turns shelf names into shelves and the books on them.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) FindPredefined(ctx context.Context, userID string, kind Kind) (Shelf, error) {
	return r.store.FindByKind(ctx, userID, kind)
}

func (r *Resolver) FindToRead(ctx context.Context, userID string) (Shelf, error) {
	return r.FindPredefined(ctx, userID, KindToRead)
}

func (r *Resolver) FindRead(ctx context.Context, userID string) (Shelf, error) {
	return r.FindPredefined(ctx, userID, KindRead)
}

// FindByName resolves a display name, ignoring case, to the user's shelf.
func (r *Resolver) FindByName(ctx context.Context, userID, name string) (Shelf, error) {
	kind, err := ResolveKind(name)
	if err != nil {
		return Shelf{}, err
	}
	return r.store.FindByKind(ctx, userID, kind)
}

// BooksInShelf returns the books on the named predefined shelf, or on all of
// them when name is AllBooks.
func (r *Resolver) BooksInShelf(ctx context.Context, userID, name string) (book.Set, error) {
	return r.BooksIn(ctx, userID, ParseSelection(name))
}

func (r *Resolver) BooksIn(ctx context.Context, userID string, sel Selection) (book.Set, error) {
	if sel.IsAll() {
		shelves, err := r.store.FindAllPredefined(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := requireEveryKind(shelves); err != nil {
			return nil, err
		}
		return BooksInShelves(shelves...), nil
	}

	s, err := r.FindByName(ctx, userID, sel.Name())
	if err != nil {
		return nil, err
	}
	return BooksInShelves(s), nil
}

// BooksInShelves returns the union of the books on the given shelves.
func BooksInShelves(shelves ...Shelf) book.Set {
	out := book.NewSet()
	for _, s := range shelves {
		out.Union(s.Books)
	}
	return out
}

// requireEveryKind reports ErrNotFound for the first predefined kind with no
// shelf record among shelves.
func requireEveryKind(shelves []Shelf) error {
	seen := make(map[Kind]bool, len(shelves))
	for _, s := range shelves {
		seen[s.Kind] = true
	}
	for _, k := range kinds {
		if !seen[k] {
			return fmt.Errorf("%w: %s", ErrNotFound, k)
		}
	}
	return nil
}
