package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUploader struct {
	lastName        string
	lastContentType string
}

func (f *fakeUploader) Upload(_ context.Context, name string, _ []byte, contentType string) (string, error) {
	f.lastName = name
	f.lastContentType = contentType
	return "/uploads/" + name, nil
}

func newUploadRouter(fake *fakeUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	passthrough := func(c *gin.Context) { c.Next() }
	NewHandler(fake, zap.NewNop()).RegisterRoutes(r.Group("/api"), passthrough)
	return r
}

func multipartFile(t *testing.T, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadImageAcceptsPNG(t *testing.T) {
	fake := &fakeUploader{}
	r := newUploadRouter(fake)

	body, contentType := multipartFile(t, "avatar.png", "image/png", []byte("pngbytes"))
	req := httptest.NewRequest("POST", "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["url"], "/uploads/"))
	assert.True(t, strings.HasSuffix(resp["url"], ".png"))
	assert.Equal(t, "image/png", fake.lastContentType)
	assert.True(t, strings.HasSuffix(fake.lastName, ".png"))
}

func TestUploadImageRejectsDisallowedMIME(t *testing.T) {
	fake := &fakeUploader{}
	r := newUploadRouter(fake)

	for _, contentType := range []string{"text/plain", "image/gif", "application/pdf", ""} {
		body, formType := multipartFile(t, "file.bin", contentType, []byte("data"))
		req := httptest.NewRequest("POST", "/api/upload-image", body)
		req.Header.Set("Content-Type", formType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, "content type %q", contentType)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Only JPEG and PNG images are allowed", resp["detail"])
	}
	assert.Empty(t, fake.lastName, "uploader must never be called for rejected files")
}

func TestUploadImageRequiresFile(t *testing.T) {
	r := newUploadRouter(&fakeUploader{})

	req := httptest.NewRequest("POST", "/api/upload-image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
