// Package uploadsvc - service lưu file icon của chatbot lên đĩa.
package uploadsvc

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Asifthisside/chatbot/config"
	"github.com/Asifthisside/chatbot/internal/common"
)

// Các extension được chấp nhận cho file icon
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// UploadService lưu file upload vào thư mục cấu hình.
// File chỉ được ghi xuống đĩa sau khi qua cả ba bước kiểm tra:
// kích thước, extension và MIME type do client khai báo.
type UploadService struct {
	dir          string
	maxFileSize  int64
	allowedMimes map[string]bool
}

// NewUploadService tạo UploadService mới và đảm bảo thư mục upload tồn tại
func NewUploadService(cfg *config.Configuration) (*UploadService, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("tạo thư mục upload %s: %w", cfg.UploadDir, err)
	}

	mimes := make(map[string]bool)
	for _, m := range cfg.AllowedMimeTypes() {
		mimes[m] = true
	}

	return &UploadService{
		dir:          cfg.UploadDir,
		maxFileSize:  cfg.MaxFileSize,
		allowedMimes: mimes,
	}, nil
}

// Validate kiểm tra file upload theo kích thước, extension và MIME type
func (s *UploadService) Validate(file *multipart.FileHeader) error {
	if file.Size > s.maxFileSize {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("File too large. Maximum size is %d bytes", s.maxFileSize),
			common.StatusBadRequest,
			nil,
		)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !allowedExtensions[ext] || !s.allowedMimes[contentType] {
		allowed := make([]string, 0, len(s.allowedMimes))
		for m := range s.allowedMimes {
			allowed = append(allowed, m)
		}
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Only these file types are allowed: %s", strings.Join(allowed, ", ")),
			common.StatusBadRequest,
			nil,
		)
	}

	return nil
}

// SaveIcon validate rồi lưu file icon, trả về tên file đã sinh.
// Tên file: icon-<unix millis>-<số ngẫu nhiên><ext> — không bao giờ dùng lại
// tên client gửi lên để tránh path traversal và ghi đè.
func (s *UploadService) SaveIcon(file *multipart.FileHeader) (string, error) {
	if err := s.Validate(file); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("icon-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	src, err := file.Open()
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer, "Không đọc được file upload", common.StatusInternalServerError, err.Error(),
		)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer, "Không ghi được file upload", common.StatusInternalServerError, err.Error(),
		)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer, "Không ghi được file upload", common.StatusInternalServerError, err.Error(),
		)
	}

	return filename, nil
}

// Dir trả về thư mục upload đang dùng
func (s *UploadService) Dir() string {
	return s.dir
}
