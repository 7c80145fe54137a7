// Package uploadhdl - Handler upload icon cho chatbot.
package uploadhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Asifthisside/chatbot/config"
	basehdl "github.com/Asifthisside/chatbot/internal/api/base/handler"
	uploadsvc "github.com/Asifthisside/chatbot/internal/api/upload/service"
	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/logger"
)

// UploadHandler xử lý API upload file.
type UploadHandler struct {
	UploadService *uploadsvc.UploadService
}

// NewUploadHandler tạo UploadHandler mới.
func NewUploadHandler(cfg *config.Configuration) (*UploadHandler, error) {
	svc, err := uploadsvc.NewUploadService(cfg)
	if err != nil {
		return nil, fmt.Errorf("tạo UploadService: %w", err)
	}
	return &UploadHandler{UploadService: svc}, nil
}

// HandleUploadIcon xử lý POST /api/upload/icon — nhận file từ form field "icon",
// lưu xuống đĩa và trả về URL tương đối để gán vào iconImage của chatbot.
func (h *UploadHandler) HandleUploadIcon(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		file, err := c.FormFile("icon")
		if err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput, "No file uploaded", common.StatusBadRequest, nil,
			))
		}

		filename, err := h.UploadService.SaveIcon(file)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		logger.WithRequest(c).WithField("filename", filename).Info("Đã upload icon")

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success":  true,
			"url":      "/uploads/" + filename,
			"filename": filename,
		})
	})
}
