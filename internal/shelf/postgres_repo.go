package shelf

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookproject/internal/book"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) FindAllPredefined(ctx context.Context, userID string) ([]Shelf, error) {
	const shelvesSQL = `
		SELECT id, user_id, kind, created_at
		FROM predefined_shelves
		WHERE user_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, shelvesSQL, userID)
	if err != nil {
		return nil, err
	}
	shelves, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Shelf, error) {
		s := Shelf{Books: book.NewSet()}
		err := row.Scan(&s.ID, &s.UserID, &s.Kind, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(shelves, func(i, j int) bool {
		return shelves[i].Kind.order() < shelves[j].Kind.order()
	})

	byID := make(map[string]*Shelf, len(shelves))
	for i := range shelves {
		byID[shelves[i].ID] = &shelves[i]
	}

	booksSQL := `SELECT ` + book.SelectColumns + ` FROM books b WHERE b.user_id = $1`
	err = r.eachBook(ctx, booksSQL, []any{userID}, func(b book.Book) {
		if s, ok := byID[b.ShelfID]; ok {
			s.Books.Add(b)
		}
	})
	if err != nil {
		return nil, err
	}
	return shelves, nil
}

func (r *PostgresRepo) FindByKind(ctx context.Context, userID string, kind Kind) (Shelf, error) {
	const shelfSQL = `
		SELECT id, user_id, kind, created_at
		FROM predefined_shelves
		WHERE user_id = $1 AND kind = $2`

	s := Shelf{Books: book.NewSet()}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, shelfSQL, userID, string(kind)).Scan(&s.ID, &s.UserID, &s.Kind, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Shelf{}, ErrNotFound
		}
		return Shelf{}, err
	}

	booksSQL := `SELECT ` + book.SelectColumns + ` FROM books b WHERE b.predefined_shelf_id = $1`
	if err := r.eachBook(ctx, booksSQL, []any{s.ID}, s.Books.Add); err != nil {
		return Shelf{}, err
	}
	return s, nil
}

func (r *PostgresRepo) EnsurePredefined(ctx context.Context, userID string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return ProvisionPredefined(timeoutCtx, r.db, userID)
}

// BatchSender is satisfied by *pgxpool.Pool and pgx.Tx.
type BatchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// ProvisionPredefined inserts any missing predefined shelf of the user. Pass a
// pgx.Tx to make it part of a larger write.
func ProvisionPredefined(ctx context.Context, db BatchSender, userID string) error {
	const insertSQL = `
		INSERT INTO predefined_shelves (user_id, kind, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, kind) DO NOTHING`

	b := &pgx.Batch{}
	for _, k := range Kinds() {
		b.Queue(insertSQL, userID, string(k))
	}
	return db.SendBatch(ctx, b).Close()
}

func (r *PostgresRepo) CreateCustom(ctx context.Context, s *CustomShelf) error {
	const insertSQL = `
		INSERT INTO custom_shelves (user_id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, insertSQL, s.UserID, s.Name).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) ListCustom(ctx context.Context, userID string) ([]CustomShelf, error) {
	const listSQL = `
		SELECT id, user_id, name, created_at
		FROM custom_shelves
		WHERE user_id = $1
		ORDER BY lower(name) ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, listSQL, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (CustomShelf, error) {
		var cs CustomShelf
		err := row.Scan(&cs.ID, &cs.UserID, &cs.Name, &cs.CreatedAt)
		return cs, err
	})
}

func (r *PostgresRepo) FindCustomByName(ctx context.Context, userID, name string) (CustomShelf, error) {
	const shelfSQL = `
		SELECT id, user_id, name, created_at
		FROM custom_shelves
		WHERE user_id = $1 AND lower(name) = lower($2)`

	cs := CustomShelf{Books: book.NewSet()}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, shelfSQL, userID, name).Scan(&cs.ID, &cs.UserID, &cs.Name, &cs.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CustomShelf{}, ErrNotFound
		}
		return CustomShelf{}, err
	}

	booksSQL := `SELECT ` + book.SelectColumns + ` FROM books b WHERE b.custom_shelf_id = $1`
	if err := r.eachBook(ctx, booksSQL, []any{cs.ID}, cs.Books.Add); err != nil {
		return CustomShelf{}, err
	}
	return cs, nil
}

func (r *PostgresRepo) DeleteCustom(ctx context.Context, userID, id string) error {
	const deleteSQL = `DELETE FROM custom_shelves WHERE user_id = $1 AND id = $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, deleteSQL, userID, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			return ErrNotFound
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) eachBook(ctx context.Context, sql string, args []any, fn func(book.Book)) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := book.ScanRow(rows)
		if err != nil {
			return err
		}
		fn(b)
	}
	return rows.Err()
}
