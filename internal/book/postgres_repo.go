package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
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

func (r *PostgresRepo) Insert(ctx context.Context, b Book) (Book, error) {
	const query = `
		INSERT INTO books (name, author, date_published, genre, is_denied, file_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query,
		b.Name, b.Author, b.DatePublished.Time, b.Genre, b.IsDenied, b.FilePath,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Book{}, ErrAlreadyExists
		}
		return Book{}, err
	}
	return b, nil
}

// List returns matching books ordered by id, i.e. insertion order.
func (r *PostgresRepo) List(ctx context.Context, f Filters) ([]Book, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.Name != "" {
		clauses = append(clauses, fmt.Sprintf("name = $%d", argn))
		args = append(args, f.Name)
		argn++
	}
	if f.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author = $%d", argn))
		args = append(args, f.Author)
		argn++
	}
	if f.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("genre = $%d", argn))
		args = append(args, f.Genre)
		argn++
	}
	if f.DatePublished != nil {
		clauses = append(clauses, fmt.Sprintf("date_published = $%d", argn))
		args = append(args, f.DatePublished.Time)
		argn++
	}

	query := fmt.Sprintf(`
		SELECT id, name, author, date_published, genre, is_denied, file_path,
		       created_at, updated_at
		FROM books
		WHERE %s
		ORDER BY id`, strings.Join(clauses, " AND "))

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Author, &b.DatePublished.Time, &b.Genre, &b.IsDenied,
			&b.FilePath, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, name, author, date_published, genre, is_denied, file_path,
		       created_at, updated_at
		FROM books
		WHERE id = $1`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Name, &b.Author, &b.DatePublished.Time, &b.Genre, &b.IsDenied,
		&b.FilePath, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// BulkDenyByNameOrAuthor flags matching rows in one statement.
// Re-running with the same sets leaves the same end state.
func (r *PostgresRepo) BulkDenyByNameOrAuthor(ctx context.Context, names, authors []string) (int64, error) {
	const query = `
		UPDATE books
		SET is_denied = TRUE, updated_at = now()
		WHERE name = ANY($1) OR author = ANY($2)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, names, authors)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
