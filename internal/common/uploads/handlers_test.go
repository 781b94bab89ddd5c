package uploads

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService returns a canned result for handler tests.
type fakeService struct {
	url string
	err error
}

func (f *fakeService) UploadFile(file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	return f.url, f.err
}

func (f *fakeService) DeleteFile(fileURL string) error {
	return nil
}

func multipartRequest(t *testing.T, field, filename string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUpload_Success(t *testing.T) {
	handler := NewHandler(&fakeService{url: "https://cdn.example.com/media/pic.jpg"})

	rec := httptest.NewRecorder()
	handler.Upload(rec, multipartRequest(t, "file", "pic.jpg"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/media/pic.jpg")
}

func TestUpload_MissingFile(t *testing.T) {
	handler := NewHandler(&fakeService{})

	rec := httptest.NewRecorder()
	handler.Upload(rec, multipartRequest(t, "wrong_field", "pic.jpg"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_ValidationError(t *testing.T) {
	handler := NewHandler(&fakeService{err: ErrFileTypeNotAllowed})

	rec := httptest.NewRecorder()
	handler.Upload(rec, multipartRequest(t, "file", "archive.zip"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_FileTooLarge(t *testing.T) {
	handler := NewHandler(&fakeService{err: ErrFileTooLarge})

	rec := httptest.NewRecorder()
	handler.Upload(rec, multipartRequest(t, "file", "huge.jpg"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_StorageError(t *testing.T) {
	handler := NewHandler(&fakeService{err: errors.New("s3: connection reset")})

	rec := httptest.NewRecorder()
	handler.Upload(rec, multipartRequest(t, "file", "pic.jpg"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
