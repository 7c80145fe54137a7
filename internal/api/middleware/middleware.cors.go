// Package middleware chứa các middleware dùng chung cho Fiber app.
package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// Các header CORS cố định cho mọi response
const (
	corsAllowMethods  = "GET, POST, PUT, DELETE, OPTIONS, PATCH"
	corsAllowHeaders  = "Content-Type, Authorization, X-Requested-With, Accept"
	corsExposeHeaders = "Content-Length"
)

// ResolveOrigin quyết định giá trị Access-Control-Allow-Origin cho một request.
// Toàn bộ policy CORS nằm ở đây — middleware chỉ áp kết quả lên response.
//
// Quy tắc:
//   - Không có Origin header: trả về "*", không bật credentials.
//   - Có Origin và allowed rỗng (chế độ allow-all): phản chiếu origin, bật credentials.
//   - Có Origin và allowed không rỗng: chỉ phản chiếu khi origin nằm trong danh sách,
//     ngược lại trả về chuỗi rỗng (không set header, browser sẽ chặn).
//
// Returns: (giá trị Allow-Origin, có bật Allow-Credentials không)
func ResolveOrigin(origin string, allowed []string) (string, bool) {
	if origin == "" {
		return "*", false
	}
	if len(allowed) == 0 {
		return origin, true
	}
	for _, a := range allowed {
		if a == origin {
			return origin, true
		}
	}
	return "", false
}

// NewCORS tạo middleware CORS phản chiếu origin của request.
// Credentials (cookie deviceId) yêu cầu Allow-Origin cụ thể, không được dùng "*",
// nên middleware phản chiếu origin thay vì wildcard khi request có Origin header.
func NewCORS(allowedOrigins []string) fiber.Handler {
	return func(c fiber.Ctx) error {
		allowOrigin, allowCredentials := ResolveOrigin(c.Get("Origin"), allowedOrigins)

		if allowOrigin != "" {
			c.Set("Access-Control-Allow-Origin", allowOrigin)
		}
		if allowCredentials {
			c.Set("Access-Control-Allow-Credentials", "true")
		}
		c.Set("Access-Control-Allow-Methods", corsAllowMethods)
		c.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Set("Access-Control-Expose-Headers", corsExposeHeaders)

		// Cache kết quả theo Origin để proxy không trả nhầm header cho origin khác
		c.Set("Vary", "Origin")

		// Preflight kết thúc tại đây
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
