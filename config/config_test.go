// Package config - Test đọc cấu hình từ environment variables.
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_MacDinh(t *testing.T) {
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Address)
	assert.Equal(t, "chatbot", cfg.MongoDB_DBName)
	assert.False(t, cfg.Serverless)
	assert.Equal(t, int64(5242880), cfg.MaxFileSize)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestAllowedMimeTypes(t *testing.T) {
	// Rỗng: dùng danh sách ảnh mặc định
	cfg := &Configuration{}
	assert.Contains(t, cfg.AllowedMimeTypes(), "image/png")
	assert.Contains(t, cfg.AllowedMimeTypes(), "image/svg+xml")

	// Có cấu hình: parse và trim
	cfg = &Configuration{AllowedFileTypes: "image/png , image/webp"}
	assert.Equal(t, []string{"image/png", "image/webp"}, cfg.AllowedMimeTypes())
}

func TestAllowedOrigins(t *testing.T) {
	// Rỗng hoặc "*": nil — middleware hiểu là reflect mọi origin
	assert.Nil(t, (&Configuration{}).AllowedOrigins())
	assert.Nil(t, (&Configuration{CORS_Origins: "*"}).AllowedOrigins())

	cfg := &Configuration{CORS_Origins: "https://a.example.com, https://b.example.com"}
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins())
}
