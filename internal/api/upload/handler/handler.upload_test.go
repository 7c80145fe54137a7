// Package uploadhdl - Test route upload icon qua HTTP.
package uploadhdl

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asifthisside/chatbot/config"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	h, err := NewUploadHandler(&config.Configuration{
		UploadDir:   dir,
		MaxFileSize: 5 * 1024 * 1024,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/upload/icon", h.HandleUploadIcon)
	return app, dir
}

// multipartBody dựng request body multipart với một file ở field "icon"
func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="icon"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestHandleUploadIcon_ThanhCong(t *testing.T) {
	app, dir := newTestApp(t)

	body, contentType := multipartBody(t, "logo.png", "image/png", []byte{0x89, 'P', 'N', 'G'})
	req := httptest.NewRequest("POST", "/api/upload/icon", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &result))

	assert.Equal(t, true, result["success"])
	filename, _ := result["filename"].(string)
	assert.True(t, strings.HasPrefix(filename, "icon-"))
	assert.Equal(t, "/uploads/"+filename, result["url"])

	// File thật sự nằm trên đĩa
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filename, entries[0].Name())
}

func TestHandleUploadIcon_KhongCoFile(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/upload/icon", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "No file uploaded", result["error"])
}

func TestHandleUploadIcon_FileTypeKhongHopLe(t *testing.T) {
	app, dir := newTestApp(t)

	body, contentType := multipartBody(t, "evil.exe", "application/x-msdownload", []byte("MZ"))
	req := httptest.NewRequest("POST", "/api/upload/icon", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	// Không có gì được ghi xuống đĩa
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
