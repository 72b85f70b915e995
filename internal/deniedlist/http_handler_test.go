package deniedlist

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookcatalog/internal/testutil"
)

func TestUpload(t *testing.T) {
	repo := &fakeRepo{denied: 1}
	handler := NewHTTPHandler(NewService(repo))

	raw := buildWorkbook(t, []string{"Dead Souls"}, []string{"Nikolai Gogol"})

	w := httptest.NewRecorder()
	handler.Upload(w, testutil.NewMultipartRequest(http.MethodPost, "/v1/books/deny", "file", raw))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Denied books updated", resp.Body["message"])
	assert.Equal(t, 1, repo.calls)
}

func TestUpload_MissingFileField(t *testing.T) {
	repo := &fakeRepo{}
	handler := NewHTTPHandler(NewService(repo))

	raw := buildWorkbook(t, []string{"Dead Souls"}, []string{"Nikolai Gogol"})

	w := httptest.NewRecorder()
	handler.Upload(w, testutil.NewMultipartRequest(http.MethodPost, "/v1/books/deny", "attachment", raw))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Expected a file upload", resp.Body["error"])
	assert.Zero(t, repo.calls)
}

func TestUpload_NotMultipart(t *testing.T) {
	handler := NewHTTPHandler(NewService(&fakeRepo{}))

	w := httptest.NewRecorder()
	handler.Upload(w, httptest.NewRequest(http.MethodPost, "/v1/books/deny", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Expected a file upload", resp.Body["error"])
}

func TestUpload_UnparsableFile(t *testing.T) {
	repo := &fakeRepo{}
	handler := NewHTTPHandler(NewService(repo))

	w := httptest.NewRecorder()
	handler.Upload(w, testutil.NewMultipartRequest(http.MethodPost, "/v1/books/deny", "file", []byte("not a workbook")))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Failed to parse the denied books file", resp.Body["error"])
	assert.Zero(t, repo.calls)
}
