// Package router đăng ký các route thuộc domain Message.
package router

import (
	"github.com/gofiber/fiber/v3"

	messagehdl "github.com/Asifthisside/chatbot/internal/api/message/handler"
)

// Register đăng ký tất cả route hội thoại lên group /api.
func Register(api fiber.Router, handler *messagehdl.MessageHandler, middlewares ...fiber.Handler) {
	group := api.Group("/messages")
	for _, m := range middlewares {
		group.Use(m)
	}

	// POST /api/messages/send — widget gửi tin nhắn
	group.Post("/send", handler.HandleSend)
	// GET /api/messages/stats — thống kê toàn hệ thống
	group.Get("/stats", handler.HandleStats)
	// GET /api/messages/users/:chatbotId — user của một chatbot
	group.Get("/users/:chatbotId", handler.HandleUsersByChatbot)
	// GET /api/messages/chatbot/:chatbotId — tin nhắn của một chatbot kèm user
	group.Get("/chatbot/:chatbotId", handler.HandleMessagesByChatbot)
}
