package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/logger"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createBookRequest struct {
	Name          string `json:"name" validate:"required"`
	Author        string `json:"author" validate:"required"`
	DatePublished string `json:"date_published" validate:"required"`
	Genre         string `json:"genre"`
	IsDenied      bool   `json:"is_denied"`
	URL           string `json:"url" validate:"omitempty,url"`
}

// Create handles POST /v1/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil || r.ContentLength == 0 {
		httpx.Error(w, http.StatusBadRequest, "No request body provided")
		return
	}

	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	details := httpx.ValidateStruct(req)
	var datePublished Date
	if req.DatePublished != "" {
		var err error
		datePublished, err = ParseDate(req.DatePublished)
		if err != nil {
			details = append(details, httpx.FieldError{
				Field:   "date_published",
				Message: "date_published must be a date in YYYY-MM-DD format",
			})
		}
	}
	if len(details) > 0 {
		httpx.Errors(w, http.StatusBadRequest, details)
		return
	}

	created, err := h.service.Create(r.Context(), CreateRequest{
		Name:          req.Name,
		Author:        req.Author,
		DatePublished: datePublished,
		Genre:         req.Genre,
		IsDenied:      req.IsDenied,
		URL:           req.URL,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyExists):
			httpx.Error(w, http.StatusConflict, "Book already exists")
		case errors.Is(err, ErrDownloadTimeout), errors.Is(err, ErrDownloadFailed):
			httpx.Error(w, http.StatusInternalServerError, "Failed to download book file")
		default:
			zlog := logger.Get()
			zlog.Error().Err(err).Msg("create book failed")
			httpx.Error(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, created)
}

// List handles GET /v1/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := Filters{
		Name:   query.Get("name"),
		Author: query.Get("author"),
		Genre:  query.Get("genre"),
	}
	if raw := query.Get("date_published"); raw != "" {
		d, err := ParseDate(raw)
		if err != nil {
			httpx.Errors(w, http.StatusBadRequest, []httpx.FieldError{{
				Field:   "date_published",
				Message: "date_published must be a date in YYYY-MM-DD format",
			}})
			return
		}
		filters.DatePublished = &d
	}

	books, err := h.service.List(r.Context(), filters)
	if err != nil {
		zlog := logger.Get()
		zlog.Error().Err(err).Msg("list books failed")
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	httpx.JSON(w, http.StatusOK, books)
}

// GetByID handles GET /v1/books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		zlog := logger.Get()
		zlog.Error().Err(err).Int64("id", id).Msg("get book failed")
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	httpx.JSON(w, http.StatusOK, b)
}

// Download handles GET /v1/books/{id}/download
func (h *HTTPHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		zlog := logger.Get()
		zlog.Error().Err(err).Int64("id", id).Msg("get book failed")
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	path, err := h.service.AuthorizeDownload(b)
	if err != nil {
		switch {
		case errors.Is(err, ErrDenied):
			httpx.Error(w, http.StatusForbidden, "Book is denied for download")
		case errors.Is(err, ErrFileNotFound):
			httpx.Error(w, http.StatusNotFound, "Book file not found")
		default:
			httpx.Error(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	http.ServeFile(w, r, path)
}

func bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		httpx.Error(w, http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return id, true
}
