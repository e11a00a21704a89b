package shelf

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookproject/internal/book"
	"bookproject/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_ResolveAgainstStore(t *testing.T) {
	db := testutil.OpenTestDB(t)
	userID := testutil.CreateUser(t, db)
	ctx := context.Background()

	shelves := NewService(NewPostgresRepo(db, 3*time.Second))
	books := book.NewService(book.NewPostgresRepo(db, 3*time.Second), shelves, nil)

	t.Run("missing shelves are not found", func(t *testing.T) {
		_, err := shelves.BooksInShelf(ctx, userID, "Read")
		assert.True(t, errors.Is(err, ErrNotFound))

		_, err = shelves.BooksInShelf(ctx, userID, AllBooks)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	require.NoError(t, shelves.EnsurePredefined(ctx, userID))
	require.NoError(t, shelves.EnsurePredefined(ctx, userID))

	predefined, err := shelves.ListPredefined(ctx, userID)
	require.NoError(t, err)
	require.Len(t, predefined, 4)
	for i, s := range predefined {
		assert.Equal(t, PredefinedNames()[i], s.Name())
	}

	add := func(title, shelfName string) book.Book {
		b, err := books.Create(ctx, userID, book.CreateInput{Title: title, Shelf: shelfName})
		require.NoError(t, err)
		return b
	}
	b1 := add("Dune", "To read")
	b2 := add("Emma", "to read")
	b3 := add("Beloved", "Read")
	b4 := add("Ulysses", "Did not finish")

	toRead, err := shelves.BooksInShelf(ctx, userID, "TO READ")
	require.NoError(t, err)
	assert.Equal(t, 2, toRead.Len())
	assert.True(t, toRead.Contains(b1.ID))
	assert.True(t, toRead.Contains(b2.ID))

	all, err := shelves.BooksInShelf(ctx, userID, AllBooks)
	require.NoError(t, err)
	assert.Equal(t, 4, all.Len())

	reading, err := shelves.BooksInShelf(ctx, userID, "Reading")
	require.NoError(t, err)
	assert.NotNil(t, reading)
	assert.Equal(t, 0, reading.Len())

	t.Run("move is exclusive", func(t *testing.T) {
		_, err := books.Move(ctx, userID, b4.ID, "Read")
		require.NoError(t, err)

		read, err := shelves.Resolver().FindRead(ctx, userID)
		require.NoError(t, err)
		assert.True(t, read.Books.Contains(b3.ID))
		assert.True(t, read.Books.Contains(b4.ID))

		dnf, err := shelves.BooksInShelf(ctx, userID, "Did not finish")
		require.NoError(t, err)
		assert.Equal(t, 0, dnf.Len())
	})

	t.Run("custom shelf", func(t *testing.T) {
		_, err := shelves.CreateCustom(ctx, userID, "Favourites")
		require.NoError(t, err)
		_, err = shelves.CreateCustom(ctx, userID, "favourites")
		assert.True(t, errors.Is(err, ErrAlreadyExists))

		_, err = books.SetCustomShelf(ctx, userID, b1.ID, "FAVOURITES")
		require.NoError(t, err)

		favs, err := shelves.BooksInCustomShelf(ctx, userID, "Favourites")
		require.NoError(t, err)
		assert.True(t, favs.Contains(b1.ID))

		custom, err := shelves.ListCustom(ctx, userID)
		require.NoError(t, err)
		require.Len(t, custom, 1)
		require.NoError(t, shelves.DeleteCustom(ctx, userID, custom[0].ID))

		got, err := books.Get(ctx, userID, b1.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CustomShelfID)

		toRead, err := shelves.BooksInShelf(ctx, userID, "To read")
		require.NoError(t, err)
		assert.True(t, toRead.Contains(b1.ID))

		assert.True(t, errors.Is(shelves.DeleteCustom(ctx, userID, custom[0].ID), ErrNotFound))
		assert.True(t, errors.Is(shelves.DeleteCustom(ctx, userID, "not-a-uuid"), ErrNotFound))
	})
}
