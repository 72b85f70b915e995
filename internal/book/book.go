package book

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors. The HTTP layer is the only place these are mapped
// to status codes.
var (
	ErrNotFound        = errors.New("book not found")
	ErrAlreadyExists   = errors.New("book already exists")
	ErrDenied          = errors.New("book is denied for download")
	ErrFileNotFound    = errors.New("book file not found")
	ErrDownloadTimeout = errors.New("book download timed out")
	ErrDownloadFailed  = errors.New("book download failed")
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals as
// "YYYY-MM-DD", matching the date_published column type.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Book represents a catalog record. CreatedAt and UpdatedAt are
// server-assigned and intentionally excluded from the JSON body.
type Book struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Author        string    `json:"author"`
	DatePublished Date      `json:"date_published"`
	Genre         string    `json:"genre"`
	IsDenied      bool      `json:"is_denied"`
	FilePath      *string   `json:"file_path"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// CreateRequest carries a validated creation request into the service.
// URL, when non-empty, points at a remote file to download.
type CreateRequest struct {
	Name          string
	Author        string
	DatePublished Date
	Genre         string
	IsDenied      bool
	URL           string
}

// Filters holds optional equality predicates for listing books.
// A zero Filters means "return all records".
type Filters struct {
	Name          string
	Author        string
	Genre         string
	DatePublished *Date
}

// Empty reports whether no filter field is set.
func (f Filters) Empty() bool {
	return f.Name == "" && f.Author == "" && f.Genre == "" && f.DatePublished == nil
}
