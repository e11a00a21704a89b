package shelf

import (
	"context"
	"errors"
	"testing"

	"bookproject/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

var (
	b1 = book.Book{ID: "b1", Title: "Dune", ShelfID: "s-to-read"}
	b2 = book.Book{ID: "b2", Title: "Emma", ShelfID: "s-to-read"}
	b3 = book.Book{ID: "b3", Title: "Beloved", ShelfID: "s-read"}
	b4 = book.Book{ID: "b4", Title: "Ulysses", ShelfID: "s-dnf"}
)

func fixtureShelves() []Shelf {
	return []Shelf{
		{ID: "s-to-read", UserID: testUserID, Kind: KindToRead, Books: book.NewSet(b1, b2)},
		{ID: "s-reading", UserID: testUserID, Kind: KindReading, Books: book.NewSet()},
		{ID: "s-read", UserID: testUserID, Kind: KindRead, Books: book.NewSet(b3)},
		{ID: "s-dnf", UserID: testUserID, Kind: KindDidNotFinish, Books: book.NewSet(b4)},
	}
}

func shelfOf(kind Kind) Shelf {
	for _, s := range fixtureShelves() {
		if s.Kind == kind {
			return s
		}
	}
	return Shelf{}
}

func ids(s book.Set) []string {
	out := make([]string, 0, s.Len())
	for _, b := range s.Sorted() {
		out = append(out, b.ID)
	}
	return out
}

func TestResolver_BooksInShelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	t.Run("named shelf", func(t *testing.T) {
		store.EXPECT().FindByKind(gomock.Any(), testUserID, KindToRead).Return(shelfOf(KindToRead), nil)

		got, err := resolver.BooksInShelf(ctx, testUserID, "To read")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"b1", "b2"}, ids(got))
	})

	t.Run("name is case-insensitive", func(t *testing.T) {
		store.EXPECT().FindByKind(gomock.Any(), testUserID, KindDidNotFinish).Return(shelfOf(KindDidNotFinish), nil)

		got, err := resolver.BooksInShelf(ctx, testUserID, "did not FINISH")
		require.NoError(t, err)
		assert.Equal(t, []string{"b4"}, ids(got))
	})

	t.Run("all books", func(t *testing.T) {
		store.EXPECT().FindAllPredefined(gomock.Any(), testUserID).Return(fixtureShelves(), nil)

		got, err := resolver.BooksInShelf(ctx, testUserID, "All books")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"b1", "b2", "b3", "b4"}, ids(got))
	})

	t.Run("empty shelf", func(t *testing.T) {
		store.EXPECT().FindByKind(gomock.Any(), testUserID, KindReading).Return(Shelf{Kind: KindReading}, nil)

		got, err := resolver.BooksInShelf(ctx, testUserID, "Reading")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 0, got.Len())
	})

	t.Run("unknown name does not hit the store", func(t *testing.T) {
		got, err := resolver.BooksInShelf(ctx, testUserID, "Do not finish")
		assert.True(t, errors.Is(err, ErrUnknownShelf))
		assert.Nil(t, got)
	})

	t.Run("missing record", func(t *testing.T) {
		store.EXPECT().FindByKind(gomock.Any(), testUserID, KindRead).Return(Shelf{}, ErrNotFound)

		got, err := resolver.BooksInShelf(ctx, testUserID, "Read")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrUnknownShelf))
		assert.Nil(t, got)
	})

	t.Run("all books with no shelf records", func(t *testing.T) {
		store.EXPECT().FindAllPredefined(gomock.Any(), testUserID).Return([]Shelf{}, nil)

		got, err := resolver.BooksInShelf(ctx, testUserID, "All books")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Nil(t, got)
	})

	t.Run("all books with a shelf record missing", func(t *testing.T) {
		partial := fixtureShelves()[:3]
		store.EXPECT().FindAllPredefined(gomock.Any(), testUserID).Return(partial, nil)

		got, err := resolver.BooksInShelf(ctx, testUserID, "All books")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.ErrorContains(t, err, string(KindDidNotFinish))
		assert.Nil(t, got)
	})

	t.Run("store failure on all books", func(t *testing.T) {
		store.EXPECT().FindAllPredefined(gomock.Any(), testUserID).Return(nil, errors.New("db down"))

		_, err := resolver.BooksInShelf(ctx, testUserID, "all books")
		assert.EqualError(t, err, "db down")
	})
}

func TestResolver_BooksInShelf_Repeatable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	resolver := NewResolver(store)

	toRead := shelfOf(KindToRead)
	store.EXPECT().FindByKind(gomock.Any(), testUserID, KindToRead).Return(toRead, nil).Times(2)

	first, err := resolver.BooksInShelf(context.Background(), testUserID, "To read")
	require.NoError(t, err)
	first.Add(b3)

	second, err := resolver.BooksInShelf(context.Background(), testUserID, "To read")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b1", "b2"}, ids(second))
	assert.Equal(t, 2, toRead.Books.Len())
}

func TestResolver_FindShortcuts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	resolver := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().FindByKind(gomock.Any(), testUserID, KindToRead).Return(shelfOf(KindToRead), nil)
	store.EXPECT().FindByKind(gomock.Any(), testUserID, KindRead).Return(shelfOf(KindRead), nil)
	store.EXPECT().FindByKind(gomock.Any(), testUserID, KindReading).Return(shelfOf(KindReading), nil)

	toRead, err := resolver.FindToRead(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "To read", toRead.Name())

	read, err := resolver.FindRead(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, KindRead, read.Kind)

	reading, err := resolver.FindByName(ctx, testUserID, "READING")
	require.NoError(t, err)
	assert.Equal(t, "s-reading", reading.ID)
}

func TestBooksInShelves(t *testing.T) {
	toRead := shelfOf(KindToRead)
	read := shelfOf(KindRead)

	t.Run("union", func(t *testing.T) {
		got := BooksInShelves(toRead, read)
		assert.ElementsMatch(t, []string{"b1", "b2", "b3"}, ids(got))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got := BooksInShelves(toRead, toRead)
		assert.Equal(t, 2, got.Len())
	})

	t.Run("no shelves", func(t *testing.T) {
		got := BooksInShelves()
		require.NotNil(t, got)
		assert.Equal(t, 0, got.Len())
	})

	t.Run("inputs untouched", func(t *testing.T) {
		got := BooksInShelves(toRead, read)
		got.Add(b4)
		assert.Equal(t, 2, toRead.Books.Len())
		assert.Equal(t, 1, read.Books.Len())
	})
}
