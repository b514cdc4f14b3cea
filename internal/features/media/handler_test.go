package media

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func uploadPhoto(t *testing.T, router *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/media/photo", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestUploadPhotoNormalizes(t *testing.T) {
	router := newTestRouter(t)

	w := uploadPhoto(t, router, "leak.png", pngBytes(t, 1600, 900))
	require.Equal(t, 200, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	require.Equal(t, float64(800), data["width"])
	require.Equal(t, float64(450), data["height"])
	require.True(t, strings.HasPrefix(data["dataUri"].(string), "data:image/jpeg;base64,"))
}

func TestUploadPhotoRejectsCorruptImage(t *testing.T) {
	router := newTestRouter(t)

	w := uploadPhoto(t, router, "leak.png", []byte("not really a png"))
	require.Equal(t, 400, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "UNSUPPORTED_IMAGE", body["code"])
}

func TestUploadPhotoRejectsWrongExtension(t *testing.T) {
	router := newTestRouter(t)

	w := uploadPhoto(t, router, "report.pdf", []byte("%PDF-1.4"))
	require.Equal(t, 400, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "INVALID_FILE", body["code"])
}

func TestUploadPhotoRequiresFile(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/media/photo", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, 400, w.Code)
}
