// Package chatbothdl - Handler CRUD cho Chatbot.
package chatbothdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	basehdl "github.com/Asifthisside/chatbot/internal/api/base/handler"
	"github.com/Asifthisside/chatbot/internal/api/chatbot/dto"
	chatbotsvc "github.com/Asifthisside/chatbot/internal/api/chatbot/service"
	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/logger"
	"github.com/Asifthisside/chatbot/internal/registry"
	"github.com/Asifthisside/chatbot/internal/utility"
)

// ChatbotHandler xử lý API quản trị chatbot.
type ChatbotHandler struct {
	ChatbotService *chatbotsvc.ChatbotService
}

// NewChatbotHandler tạo ChatbotHandler mới.
func NewChatbotHandler(reg *registry.Registry[*mongo.Collection]) (*ChatbotHandler, error) {
	svc, err := chatbotsvc.NewChatbotService(reg)
	if err != nil {
		return nil, fmt.Errorf("tạo ChatbotService: %w", err)
	}
	return &ChatbotHandler{ChatbotService: svc}, nil
}

// HandleGetAll xử lý GET /api/chatbots — danh sách tất cả chatbot, mới nhất trước.
func (h *ChatbotHandler) HandleGetAll(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		chatbots, err := h.ChatbotService.FindAll(c.Context())
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, chatbots)
	})
}

// HandleGetById xử lý GET /api/chatbots/:id — chi tiết một chatbot.
func (h *ChatbotHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		// ID sai định dạng trả về 400 trước khi chạm database
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			return basehdl.HandleError(c, common.ErrInvalidID)
		}

		chatbot, err := h.ChatbotService.FindOneById(c.Context(), id)
		if err != nil {
			return basehdl.HandleError(c, notFoundAs(err, "Chatbot not found"))
		}
		return basehdl.JSONResponse(c, common.StatusOK, chatbot)
	})
}

// HandleCreate xử lý POST /api/chatbots — tạo chatbot mới, trả về 201 với document đã lưu.
func (h *ChatbotHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.ChatbotCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}
		if err := common.ValidateStruct(&input); err != nil {
			return basehdl.HandleError(c, err)
		}

		created, err := h.ChatbotService.Create(c.Context(), input.ToModel())
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		logger.WithRequest(c).WithField("chatbotId", created.ID.Hex()).Info("Đã tạo chatbot mới")
		return basehdl.JSONResponse(c, common.StatusCreated, created)
	})
}

// HandleUpdate xử lý PUT /api/chatbots/:id — cập nhật các field được cung cấp,
// trả về document sau khi cập nhật.
func (h *ChatbotHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			return basehdl.HandleError(c, common.ErrInvalidID)
		}

		var input dto.ChatbotUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}
		if err := common.ValidateStruct(&input); err != nil {
			return basehdl.HandleError(c, err)
		}

		updated, err := h.ChatbotService.Update(c.Context(), id, input.ToSetMap())
		if err != nil {
			return basehdl.HandleError(c, notFoundAs(err, "Chatbot not found"))
		}
		return basehdl.JSONResponse(c, common.StatusOK, updated)
	})
}

// HandleDelete xử lý DELETE /api/chatbots/:id.
func (h *ChatbotHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			return basehdl.HandleError(c, common.ErrInvalidID)
		}

		if err := h.ChatbotService.Delete(c.Context(), id); err != nil {
			return basehdl.HandleError(c, notFoundAs(err, "Chatbot not found"))
		}
		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"message": "Chatbot deleted successfully",
		})
	})
}

// notFoundAs thay message mặc định của ErrNotFound bằng message domain-specific
func notFoundAs(err error, message string) error {
	if common.IsNotFound(err) {
		return common.NewError(common.ErrCodeDatabaseQuery, message, common.StatusNotFound, nil)
	}
	return err
}
