package middleware

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Asifthisside/chatbot/internal/api/base/handler"
	"github.com/Asifthisside/chatbot/internal/database"
)

// NewDatabaseGate tạo middleware đảm bảo kết nối MongoDB sẵn sàng trước khi
// request chạm tới handler. Môi trường serverless có thể nhận request khi
// client chưa từng ping thành công; gate này thực hiện lazy connect và trả
// 503 nếu database không kết nối được.
func NewDatabaseGate(manager *database.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := manager.Ensure(c.Context()); err != nil {
			return basehdl.HandleError(c, err)
		}
		return c.Next()
	}
}
