package deniedlist

import (
	"errors"
	"io"
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/logger"
)

const maxUploadBytes = 10 << 20

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Upload handles POST /v1/books/deny. The spreadsheet arrives as the
// multipart form field "file".
func (h *HTTPHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Expected a file upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Expected a file upload")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Expected a file upload")
		return
	}

	if _, err := h.service.ImportAndApply(r.Context(), raw); err != nil {
		if errors.Is(err, ErrParse) {
			zlog := logger.Get()
			zlog.Error().Err(err).Msg("failed to parse the denied books file")
			httpx.Error(w, http.StatusBadRequest, "Failed to parse the denied books file")
			return
		}
		zlog := logger.Get()
		zlog.Error().Err(err).Msg("denied list update failed")
		httpx.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Denied books updated"})
}
