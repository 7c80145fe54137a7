package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Tất cả giá trị được đọc từ environment variables (hoặc file env theo GO_ENV).
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":5000"`            // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`       // URL kết nối MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"chatbot"`   // Tên database
	Serverless            bool   `env:"SERVERLESS" envDefault:"false"`         // Chế độ scale-to-zero: kết nối lazy theo request thay vì fail lúc khởi động
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:""`            // Các origins được phép (phân cách bởi dấu phẩy, rỗng = reflect tất cả)
	UploadDir             string `env:"UPLOAD_DIR" envDefault:"uploads"`       // Thư mục lưu file upload
	MaxFileSize           int64  `env:"MAX_FILE_SIZE" envDefault:"5242880"`    // Kích thước file upload tối đa (bytes, mặc định 5MB)
	AllowedFileTypes      string `env:"ALLOWED_FILE_TYPES" envDefault:""`      // MIME types được phép upload (phân cách bởi dấu phẩy, rỗng = mặc định ảnh)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"false"` // Bật/tắt rate limiting
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`       // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`     // Thời gian window (giây)
}

// defaultAllowedFileTypes là danh sách MIME types mặc định cho upload icon.
var defaultAllowedFileTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/svg+xml",
	"image/webp",
}

// AllowedMimeTypes trả về danh sách MIME types được phép upload.
// Đọc từ ALLOWED_FILE_TYPES, rỗng thì dùng mặc định (các định dạng ảnh).
func (c *Configuration) AllowedMimeTypes() []string {
	if strings.TrimSpace(c.AllowedFileTypes) == "" {
		return defaultAllowedFileTypes
	}
	parts := strings.Split(c.AllowedFileTypes, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// AllowedOrigins trả về danh sách origins được phép cho CORS.
// Rỗng = reflect origin của request (chính sách permissive, xem middleware).
func (c *Configuration) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORS_Origins) == "" || c.CORS_Origins == "*" {
		return nil
	}
	parts := strings.Split(c.CORS_Origins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ working directory
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) và environment variables.
// File env là tùy chọn — khi deploy serverless, biến môi trường được inject trực tiếp.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		// Load file env nếu tồn tại, env vars đã set trực tiếp vẫn được ưu tiên đọc
		_ = godotenv.Load(envPath)
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("lỗi khi parse config: %w", err)
	}

	return &cfg, nil
}
