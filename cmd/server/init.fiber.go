package main

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/google/uuid"

	basehdl "github.com/Asifthisside/chatbot/internal/api/base/handler"
	"github.com/Asifthisside/chatbot/internal/api/middleware"
	apirouter "github.com/Asifthisside/chatbot/internal/api/router"
	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp(app *App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName:      "Chatbot Admin API",
		ServerHeader: "Chatbot Admin API",

		BodyLimit: int(app.Config.MaxFileSize) + 1024*1024, // body tối đa = file tối đa + phần dư cho multipart

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// ErrorHandler bắt các lỗi thoát ra ngoài handler (route không tồn tại,
		// body quá lớn...). Lỗi nghiệp vụ đã được handler trả về trước khi tới đây.
		ErrorHandler: func(c fiber.Ctx, err error) error {
			var customErr *common.Error
			if errors.As(err, &customErr) {
				return c.Status(customErr.StatusCode).JSON(fiber.Map{
					"code":    customErr.Code.Code,
					"message": customErr.Message,
					"status":  "error",
				})
			}

			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			if code >= fiber.StatusInternalServerError {
				logger.WithRequest(c).WithError(err).Error("Request error")
			}

			return c.Status(code).JSON(fiber.Map{
				"code":    code,
				"message": message,
				"status":  "error",
			})
		},
	})

	log := logger.GetAppLogger()

	// 1. Request ID — trace request qua log
	fiberApp.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	// 2. CORS — đặt trước các middleware khác để preflight không bị chặn
	fiberApp.Use(middleware.NewCORS(app.Config.AllowedOrigins()))

	// 3. Rate limiting theo IP (tùy chọn)
	if app.Config.RateLimit_Enabled && app.Config.RateLimit_Max > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        app.Config.RateLimit_Max,
			Expiration: time.Duration(app.Config.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Quá nhiều yêu cầu, vui lòng thử lại sau",
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Health check và preflight không tính vào rate limit
				return c.Path() == "/api/health" || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", app.Config.RateLimit_Max, app.Config.RateLimit_Window)
	}

	// 4. Recover — panic ngoài SafeHandler vẫn phải trả được response
	fiberApp.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")
		},
	}))

	// 5. Static — serve icon đã upload
	fiberApp.Use("/uploads", static.New(app.Config.UploadDir))

	apirouter.SetupRoutes(fiberApp, app.Handlers, app.DB)

	registerNotFound(fiberApp)

	return fiberApp
}

// registerNotFound đăng ký catch-all 404 sau toàn bộ route
func registerNotFound(app *fiber.App) {
	app.Use(func(c fiber.Ctx) error {
		return basehdl.JSONResponse(c, common.StatusNotFound, fiber.Map{
			"error": "Route not found",
		})
	})
}
