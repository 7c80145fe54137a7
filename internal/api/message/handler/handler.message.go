// Package messagehdl - Handler cho hội thoại: gửi tin, thống kê, tra cứu theo chatbot.
package messagehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	basehdl "github.com/Asifthisside/chatbot/internal/api/base/handler"
	"github.com/Asifthisside/chatbot/internal/api/message/dto"
	"github.com/Asifthisside/chatbot/internal/api/message/models"
	messagesvc "github.com/Asifthisside/chatbot/internal/api/message/service"
	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/logger"
	"github.com/Asifthisside/chatbot/internal/registry"
	"github.com/Asifthisside/chatbot/internal/utility"
)

// Cookie nhận diện thiết bị, sống 1 năm
const (
	deviceCookieName   = "deviceId"
	deviceCookieMaxAge = 365 * 24 * 60 * 60 // giây
)

// MessageHandler xử lý API hội thoại.
type MessageHandler struct {
	MessageService *messagesvc.MessageService
}

// NewMessageHandler tạo MessageHandler mới.
func NewMessageHandler(reg *registry.Registry[*mongo.Collection]) (*MessageHandler, error) {
	svc, err := messagesvc.NewMessageService(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo MessageService: %w", err)
	}
	return &MessageHandler{MessageService: svc}, nil
}

// HandleSend xử lý POST /api/messages/send — ghi nhận một tin nhắn.
// Thứ tự nhận diện thiết bị: deviceId trong body > cookie > sinh mới.
// Response luôn set lại cookie deviceId để lượt chat sau nhận diện được thiết bị.
func (h *MessageHandler) HandleSend(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.MessageSendInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}
		if input.ChatbotId == "" || input.Text == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Chatbot ID and message text are required",
				common.StatusBadRequest,
				nil,
			))
		}
		if err := common.ValidateStruct(&input); err != nil {
			return basehdl.HandleError(c, err)
		}

		chatbotId := utility.String2ObjectID(input.ChatbotId)
		if chatbotId.IsZero() {
			return basehdl.HandleError(c, common.ErrInvalidID)
		}

		msgType := input.Type
		if msgType == "" {
			msgType = models.MessageTypeUser
		}

		// Fingerprint thiết bị từ request
		userAgent := c.Get("User-Agent")
		device := utility.DetectBrowserAndOS(userAgent)
		ipAddress := utility.ClientIP(c.Get("X-Forwarded-For"), c.Get("X-Real-IP"), c.IP())
		deviceId := utility.ResolveDeviceID(input.DeviceId, c.Cookies(deviceCookieName))

		message, user, err := h.MessageService.RecordMessage(c.Context(), messagesvc.RecordInput{
			ChatbotId: chatbotId,
			Text:      input.Text,
			Type:      msgType,
			DeviceId:  deviceId,
			IpAddress: ipAddress,
			Browser:   device.Browser,
			OS:        device.OS,
			UserAgent: userAgent,
		})
		if err != nil {
			if common.IsNotFound(err) {
				return basehdl.HandleError(c, common.NewError(
					common.ErrCodeDatabaseQuery, "Chatbot not found", common.StatusNotFound, nil,
				))
			}
			return basehdl.HandleError(c, err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     deviceCookieName,
			Value:    deviceId,
			MaxAge:   deviceCookieMaxAge,
			HTTPOnly: true,
		})

		logger.WithRequest(c).WithFields(map[string]interface{}{
			"chatbotId": chatbotId.Hex(),
			"deviceId":  deviceId,
			"browser":   user.Browser,
		}).Debug("Đã ghi nhận tin nhắn")

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"message": message,
			"user": dto.SendResultUser{
				DeviceId: user.DeviceId,
				Browser:  user.Browser,
				OS:       user.OS,
			},
		})
	})
}

// HandleStats xử lý GET /api/messages/stats — thống kê toàn hệ thống.
func (h *MessageHandler) HandleStats(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		stats, err := h.MessageService.Stats(c.Context())
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, stats)
	})
}

// HandleUsersByChatbot xử lý GET /api/messages/users/:chatbotId — danh sách user
// của một chatbot, hoạt động gần nhất trước.
func (h *MessageHandler) HandleUsersByChatbot(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		chatbotId := utility.String2ObjectID(c.Params("chatbotId"))
		if chatbotId.IsZero() {
			return basehdl.HandleError(c, common.ErrInvalidID)
		}

		users, err := h.MessageService.UsersByChatbot(c.Context(), chatbotId)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, users)
	})
}

// HandleMessagesByChatbot xử lý GET /api/messages/chatbot/:chatbotId — tin nhắn
// của một chatbot kèm thông tin người gửi, mới nhất trước.
func (h *MessageHandler) HandleMessagesByChatbot(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		chatbotId := utility.String2ObjectID(c.Params("chatbotId"))
		if chatbotId.IsZero() {
			return basehdl.HandleError(c, common.ErrInvalidID)
		}

		messages, err := h.MessageService.MessagesByChatbot(c.Context(), chatbotId)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, messages)
	})
}
