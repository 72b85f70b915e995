package book

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"bookcatalog/internal/logger"
	"bookcatalog/internal/platform/fetch"
)

// Fetcher downloads a remote file to a local destination.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Service orchestrates the book lifecycle: creation with an optional
// remote file download, listing and lookup, and download
// authorization.
type Service struct {
	repo       Repository
	fetcher    Fetcher
	storageDir string
}

func NewService(repo Repository, fetcher Fetcher, storageDir string) *Service {
	return &Service{repo: repo, fetcher: fetcher, storageDir: storageDir}
}

// Create persists a new book. When req.URL is set the remote file is
// downloaded first; the record is not persisted if the download
// fails.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Book, error) {
	log := logger.Get()

	var filePath *string
	if req.URL != "" {
		dest, err := s.destinationPath(req.URL)
		if err != nil {
			return Book{}, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return Book{}, fmt.Errorf("create storage dir: %w", err)
		}

		if err := s.fetcher.Fetch(ctx, req.URL, dest); err != nil {
			log.Error().Err(err).Str("url", req.URL).Msg("book file download failed")
			if errors.Is(err, fetch.ErrTimeout) {
				return Book{}, fmt.Errorf("%w: %v", ErrDownloadTimeout, err)
			}
			return Book{}, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
		}
		filePath = &dest
	}

	created, err := s.repo.Insert(ctx, Book{
		Name:          req.Name,
		Author:        req.Author,
		DatePublished: req.DatePublished,
		Genre:         req.Genre,
		IsDenied:      req.IsDenied,
		FilePath:      filePath,
	})
	if err != nil {
		return Book{}, err
	}
	return created, nil
}

// List returns books matching the filters. An empty filter set
// returns every record; order is by id.
func (s *Service) List(ctx context.Context, f Filters) ([]Book, error) {
	return s.repo.List(ctx, f)
}

// GetByID returns the book or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// AuthorizeDownload resolves the file path to stream for a book.
// Denial is checked before file presence, so a denied book with no
// file still reports ErrDenied.
func (s *Service) AuthorizeDownload(b Book) (string, error) {
	if b.IsDenied {
		return "", ErrDenied
	}
	if b.FilePath == nil || *b.FilePath == "" {
		return "", ErrFileNotFound
	}
	return *b.FilePath, nil
}

// destinationPath builds a fresh storage path for a download,
// preserving the extension of the source URL.
func (s *Service) destinationPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	name := uuid.New().String() + path.Ext(u.Path)
	return filepath.Join(s.storageDir, name), nil
}
