// Package messagehdl - Test validate input của route send trước khi chạm database.
package messagehdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp dựng app với service nil: các test chỉ đi qua những đường
// bị chặn ở tầng validate, không bao giờ gọi tới service.
func newTestApp() *fiber.App {
	h := &MessageHandler{}
	app := fiber.New()
	app.Post("/api/messages/send", h.HandleSend)
	app.Get("/api/messages/users/:chatbotId", h.HandleUsersByChatbot)
	app.Get("/api/messages/chatbot/:chatbotId", h.HandleMessagesByChatbot)
	return app
}

func postJSON(app *fiber.App, path, body string) (int, map[string]interface{}, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var result map[string]interface{}
	_ = json.Unmarshal(raw, &result)
	return resp.StatusCode, result, nil
}

func TestHandleSend_ThieuChatbotId(t *testing.T) {
	app := newTestApp()

	status, result, err := postJSON(app, "/api/messages/send", `{"text":"hello"}`)
	require.NoError(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "Chatbot ID and message text are required", result["error"])
}

func TestHandleSend_ThieuText(t *testing.T) {
	app := newTestApp()

	status, result, err := postJSON(app, "/api/messages/send", `{"chatbotId":"65a000000000000000000001"}`)
	require.NoError(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "Chatbot ID and message text are required", result["error"])
}

func TestHandleSend_TypeKhongHopLe(t *testing.T) {
	app := newTestApp()

	status, _, err := postJSON(app, "/api/messages/send",
		`{"chatbotId":"65a000000000000000000001","text":"hi","type":"robot"}`)
	require.NoError(t, err)

	assert.Equal(t, 400, status)
}

func TestHandleSend_ChatbotIdSaiDinhDang(t *testing.T) {
	app := newTestApp()

	status, _, err := postJSON(app, "/api/messages/send", `{"chatbotId":"abc","text":"hi"}`)
	require.NoError(t, err)

	assert.Equal(t, 400, status)
}

func TestHandleUsersByChatbot_IDSaiDinhDang(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/messages/users/not-hex", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleMessagesByChatbot_IDSaiDinhDang(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/messages/chatbot/not-hex", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}
