package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SelectColumns lists the book columns read by ScanRow, aliased on "b".
const SelectColumns = `b.id, b.user_id, b.title, b.isbn, b.author_first_name, b.author_last_name,
	b.page_count, b.predefined_shelf_id, b.custom_shelf_id, b.created_at, b.updated_at`

// ScanRow reads one row selected with SelectColumns.
func ScanRow(row pgx.Row) (Book, error) {
	var (
		b         Book
		firstName *string
		lastName  *string
	)
	if err := row.Scan(
		&b.ID, &b.UserID, &b.Title, &b.ISBN, &firstName, &lastName,
		&b.PageCount, &b.ShelfID, &b.CustomShelfID, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return Book{}, err
	}
	if firstName != nil || lastName != nil {
		b.Author = &Author{}
		if firstName != nil {
			b.Author.FirstName = *firstName
		}
		if lastName != nil {
			b.Author.LastName = *lastName
		}
	}
	return b, nil
}

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

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const insertSQL = `
		INSERT INTO books (user_id, title, isbn, author_first_name, author_last_name, page_count,
		                   predefined_shelf_id, custom_shelf_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	var firstName, lastName *string
	if b.Author != nil {
		firstName, lastName = &b.Author.FirstName, &b.Author.LastName
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, insertSQL,
		b.UserID, b.Title, b.ISBN, firstName, lastName, b.PageCount, b.ShelfID, b.CustomShelfID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, userID, id string) (Book, error) {
	query := `SELECT ` + SelectColumns + ` FROM books b WHERE b.user_id = $1 AND b.id = $2`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := ScanRow(r.db.QueryRow(timeoutCtx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context, userID string, q Query) ([]Book, int, error) {
	const countSQL = `SELECT COUNT(*) FROM books WHERE user_id = $1`
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `SELECT ` + SelectColumns + `
		FROM books b
		WHERE b.user_id = $1
		ORDER BY b.title ASC, b.id ASC
		LIMIT $2 OFFSET $3`
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, userID, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := ScanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) UpdateShelf(ctx context.Context, userID, id, shelfID string) error {
	const updateSQL = `
		UPDATE books SET predefined_shelf_id = $3, updated_at = NOW()
		WHERE user_id = $1 AND id = $2`
	return r.execOne(ctx, updateSQL, userID, id, shelfID)
}

func (r *PostgresRepo) UpdateCustomShelf(ctx context.Context, userID, id string, customShelfID *string) error {
	const updateSQL = `
		UPDATE books SET custom_shelf_id = $3, updated_at = NOW()
		WHERE user_id = $1 AND id = $2`
	return r.execOne(ctx, updateSQL, userID, id, customShelfID)
}

func (r *PostgresRepo) Delete(ctx context.Context, userID, id string) error {
	const deleteSQL = `DELETE FROM books WHERE user_id = $1 AND id = $2`
	return r.execOne(ctx, deleteSQL, userID, id)
}

func (r *PostgresRepo) execOne(ctx context.Context, sql string, args ...any) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	commandTag, err := r.db.Exec(timeoutCtx, sql, args...)
	if err != nil {
		if isInvalidID(err) {
			return ErrNotFound
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// isInvalidID reports a malformed UUID parameter (invalid_text_representation).
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
