package basehdl

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Asifthisside/chatbot/internal/common"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth kiểm tra tình trạng hệ thống.
// Route này không chạm database: server trả lời được là "OK", trạng thái
// kết nối Mongo do connection gate của từng route dữ liệu quyết định.
// @Router /api/health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status":  "OK",
		"message": "Server is running",
	})
}
