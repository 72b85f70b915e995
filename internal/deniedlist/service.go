package deniedlist

import (
	"context"

	"bookcatalog/internal/logger"
)

// Repository is the slice of book storage this service needs.
type Repository interface {
	BulkDenyByNameOrAuthor(ctx context.Context, names, authors []string) (int64, error)
}

// Service parses denied-list uploads and applies them as one bulk
// update.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ImportAndApply parses raw spreadsheet bytes and flags every book
// whose name or author appears in the parsed sets. Storage is not
// touched when parsing fails. Returns the number of affected rows.
func (s *Service) ImportAndApply(ctx context.Context, raw []byte) (int64, error) {
	set, err := Parse(raw)
	if err != nil {
		return 0, err
	}

	denied, err := s.repo.BulkDenyByNameOrAuthor(ctx, set.Names, set.Authors)
	if err != nil {
		return 0, err
	}

	zlog := logger.Get()
	zlog.Info().
		Int("names", len(set.Names)).
		Int("authors", len(set.Authors)).
		Int64("denied", denied).
		Msg("denied list applied")
	return denied, nil
}
