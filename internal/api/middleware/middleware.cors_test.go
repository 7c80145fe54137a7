// Package middleware - Test policy CORS phản chiếu origin.
package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrigin(t *testing.T) {
	tests := []struct {
		name            string
		origin          string
		allowed         []string
		wantOrigin      string
		wantCredentials bool
	}{
		{
			name:       "không có Origin thì wildcard, không credentials",
			origin:     "",
			allowed:    nil,
			wantOrigin: "*",
		},
		{
			name:            "allow-all phản chiếu origin kèm credentials",
			origin:          "https://shop.example.com",
			allowed:         nil,
			wantOrigin:      "https://shop.example.com",
			wantCredentials: true,
		},
		{
			name:            "origin nằm trong allow-list",
			origin:          "https://a.example.com",
			allowed:         []string{"https://a.example.com", "https://b.example.com"},
			wantOrigin:      "https://a.example.com",
			wantCredentials: true,
		},
		{
			name:       "origin ngoài allow-list bị từ chối",
			origin:     "https://evil.example.com",
			allowed:    []string{"https://a.example.com"},
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOrigin, gotCredentials := ResolveOrigin(tt.origin, tt.allowed)
			assert.Equal(t, tt.wantOrigin, gotOrigin)
			assert.Equal(t, tt.wantCredentials, gotCredentials)
		})
	}
}

func newCORSTestApp(allowed []string) *fiber.App {
	app := fiber.New()
	app.Use(NewCORS(allowed))
	app.Get("/ping", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})
	return app
}

func TestNewCORS_PhanChieuOrigin(t *testing.T) {
	app := newCORSTestApp(nil)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://widget.example.com")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "https://widget.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header.Get("Vary"), "Origin")
}

func TestNewCORS_KhongCoOrigin(t *testing.T) {
	app := newCORSTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	// Wildcard không bao giờ đi kèm credentials
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestNewCORS_Preflight204(t *testing.T) {
	app := newCORSTestApp(nil)

	req := httptest.NewRequest("OPTIONS", "/ping", nil)
	req.Header.Set("Origin", "https://widget.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 204, resp.StatusCode)
	assert.Equal(t, "https://widget.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Methods"))
}

func TestNewCORS_OriginBiChan(t *testing.T) {
	app := newCORSTestApp([]string{"https://trusted.example.com"})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Request vẫn chạy, nhưng không có Allow-Origin — browser sẽ chặn response
	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}
