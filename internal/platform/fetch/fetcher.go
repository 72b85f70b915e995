package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"bookcatalog/internal/logger"
)

// DefaultTimeout bounds a single download when no explicit timeout is
// configured.
const DefaultTimeout = 120 * time.Second

// Fetch failure kinds. Callers match with errors.Is.
var (
	ErrTimeout          = errors.New("download timed out")
	ErrNetwork          = errors.New("network error")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Fetcher downloads remote files to local paths. Failures are never
// retried; every error surfaces to the caller immediately.
type Fetcher struct {
	httpClient *http.Client
	timeout    time.Duration
}

func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// Fetch downloads url into dest. The destination file only exists
// after a fully successful transfer; partial files are removed.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	log := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, f.timeout)
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, f.timeout)
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("close %s: %w", dest, err)
	}

	log.Info().Str("url", url).Str("dest", dest).Msg("file downloaded")
	return nil
}
