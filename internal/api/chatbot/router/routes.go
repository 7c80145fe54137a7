// Package router đăng ký các route thuộc domain Chatbot.
package router

import (
	"github.com/gofiber/fiber/v3"

	chatbothdl "github.com/Asifthisside/chatbot/internal/api/chatbot/handler"
)

// Register đăng ký tất cả route chatbot lên group /api.
func Register(api fiber.Router, handler *chatbothdl.ChatbotHandler, middlewares ...fiber.Handler) {
	group := api.Group("/chatbots")
	for _, m := range middlewares {
		group.Use(m)
	}

	// GET /api/chatbots — danh sách tất cả chatbot
	group.Get("/", handler.HandleGetAll)
	// GET /api/chatbots/:id — chi tiết một chatbot
	group.Get("/:id", handler.HandleGetById)
	// POST /api/chatbots — tạo chatbot mới
	group.Post("/", handler.HandleCreate)
	// PUT /api/chatbots/:id — cập nhật chatbot
	group.Put("/:id", handler.HandleUpdate)
	// DELETE /api/chatbots/:id — xóa chatbot
	group.Delete("/:id", handler.HandleDelete)
}
