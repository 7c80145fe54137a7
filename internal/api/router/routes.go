// Package router lắp toàn bộ route của ứng dụng lên Fiber app.
package router

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Asifthisside/chatbot/config"
	basehdl "github.com/Asifthisside/chatbot/internal/api/base/handler"
	chatbothdl "github.com/Asifthisside/chatbot/internal/api/chatbot/handler"
	chatbotrt "github.com/Asifthisside/chatbot/internal/api/chatbot/router"
	messagehdl "github.com/Asifthisside/chatbot/internal/api/message/handler"
	messagert "github.com/Asifthisside/chatbot/internal/api/message/router"
	"github.com/Asifthisside/chatbot/internal/api/middleware"
	uploadhdl "github.com/Asifthisside/chatbot/internal/api/upload/handler"
	uploadrt "github.com/Asifthisside/chatbot/internal/api/upload/router"
	"github.com/Asifthisside/chatbot/internal/database"
	"github.com/Asifthisside/chatbot/internal/registry"
)

// Handlers gom các handler của tất cả domain để lắp route
type Handlers struct {
	System  *basehdl.SystemHandler
	Chatbot *chatbothdl.ChatbotHandler
	Message *messagehdl.MessageHandler
	Upload  *uploadhdl.UploadHandler
}

// NewHandlers khởi tạo handler cho tất cả domain
func NewHandlers(cfg *config.Configuration, reg *registry.Registry[*mongo.Collection]) (*Handlers, error) {
	chatbotHandler, err := chatbothdl.NewChatbotHandler(reg)
	if err != nil {
		return nil, err
	}
	messageHandler, err := messagehdl.NewMessageHandler(reg)
	if err != nil {
		return nil, err
	}
	uploadHandler, err := uploadhdl.NewUploadHandler(cfg)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		System:  basehdl.NewSystemHandler(),
		Chatbot: chatbotHandler,
		Message: messageHandler,
		Upload:  uploadHandler,
	}, nil
}

// SetupRoutes đăng ký toàn bộ route lên app.
// Các route dữ liệu đi qua database gate để đảm bảo kết nối Mongo sẵn sàng;
// health và upload thì không.
func SetupRoutes(app *fiber.App, h *Handlers, manager *database.Manager) {
	api := app.Group("/api")
	dbGate := middleware.NewDatabaseGate(manager)

	// GET /api/health — kiểm tra server còn sống
	api.Get("/health", h.System.HandleHealth)

	chatbotrt.Register(api, h.Chatbot, dbGate)
	messagert.Register(api, h.Message, dbGate)
	uploadrt.Register(api, h.Upload)
}
