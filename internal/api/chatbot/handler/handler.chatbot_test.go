// Package chatbothdl - Test validate ID trước khi chạm database.
package chatbothdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp dựng app chỉ với các route có đường đi không chạm database.
// Service để nil: handler phải trả lỗi validate trước khi gọi tới service.
func newTestApp() *fiber.App {
	h := &ChatbotHandler{}
	app := fiber.New()
	app.Get("/api/chatbots/:id", h.HandleGetById)
	app.Put("/api/chatbots/:id", h.HandleUpdate)
	app.Delete("/api/chatbots/:id", h.HandleDelete)
	return app
}

func TestHandleGetById_IDSaiDinhDang(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chatbots/not-a-hex-id", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Contains(t, result, "error")
}

func TestHandleUpdate_IDSaiDinhDang(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("PUT", "/api/chatbots/123", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDelete_IDSaiDinhDang(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/chatbots/zzz", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}
