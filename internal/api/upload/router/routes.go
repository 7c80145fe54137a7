// Package router đăng ký các route thuộc domain Upload.
package router

import (
	"github.com/gofiber/fiber/v3"

	uploadhdl "github.com/Asifthisside/chatbot/internal/api/upload/handler"
)

// Register đăng ký route upload lên group /api.
// Upload không chạm database nên không cần database gate.
func Register(api fiber.Router, handler *uploadhdl.UploadHandler) {
	group := api.Group("/upload")

	// POST /api/upload/icon — upload icon cho chatbot
	group.Post("/icon", handler.HandleUploadIcon)
}
