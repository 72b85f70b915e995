package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=./mocks/repository_mock.go -package=mocks

// Repository defines the contract for book storage.
type Repository interface {
	// Insert atomically creates a record and returns it with the
	// server-assigned id and timestamps. A (name, author,
	// date_published) collision yields ErrAlreadyExists.
	Insert(ctx context.Context, b Book) (Book, error)
	// List returns records matching the filters, ordered by id.
	List(ctx context.Context, f Filters) ([]Book, error)
	// GetByID returns the record or ErrNotFound.
	GetByID(ctx context.Context, id int64) (Book, error)
	// BulkDenyByNameOrAuthor flags every record whose name or author
	// appears in the given sets in a single statement and reports how
	// many rows were touched.
	BulkDenyByNameOrAuthor(ctx context.Context, names, authors []string) (int64, error)
}
