package utility

import (
	"math/rand"
	"strings"
	"time"
)

// DeviceInfo là kết quả phân loại user-agent
type DeviceInfo struct {
	Browser string // Tên trình duyệt (Chrome, Firefox, Safari, Edge, Opera, Unknown)
	OS      string // Tên hệ điều hành (Windows, Mac, Linux, Android, iOS, Unknown)
}

// DetectBrowserAndOS phân loại browser và OS từ chuỗi user-agent bằng
// substring matching theo thứ tự. Đây là heuristic best-effort, không phải
// parser đầy đủ cú pháp user-agent.
//
// Thứ tự kiểm tra quan trọng: Chrome phải loại trừ Edge (UA của Edge chứa
// cả "Chrome"), Safari phải loại trừ Chrome.
func DetectBrowserAndOS(userAgent string) DeviceInfo {
	info := DeviceInfo{Browser: "Unknown", OS: "Unknown"}

	switch {
	case strings.Contains(userAgent, "Chrome") && !strings.Contains(userAgent, "Edg"):
		info.Browser = "Chrome"
	case strings.Contains(userAgent, "Firefox"):
		info.Browser = "Firefox"
	case strings.Contains(userAgent, "Safari") && !strings.Contains(userAgent, "Chrome"):
		info.Browser = "Safari"
	case strings.Contains(userAgent, "Edg"):
		info.Browser = "Edge"
	case strings.Contains(userAgent, "Opera") || strings.Contains(userAgent, "OPR"):
		info.Browser = "Opera"
	}

	switch {
	case strings.Contains(userAgent, "Windows"):
		info.OS = "Windows"
	case strings.Contains(userAgent, "Mac OS X") || strings.Contains(userAgent, "Macintosh"):
		info.OS = "Mac"
	case strings.Contains(userAgent, "Linux"):
		info.OS = "Linux"
	case strings.Contains(userAgent, "Android"):
		info.OS = "Android"
	case strings.Contains(userAgent, "iOS") || strings.Contains(userAgent, "iPhone") || strings.Contains(userAgent, "iPad"):
		info.OS = "iOS"
	}

	return info
}

const deviceIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewDeviceID sinh device identifier mới cho visitor chưa có cookie.
// Format: device_<unix millis>_<9 ký tự random>. Tính duy nhất ở đây là
// best-effort — unique index (deviceId, chatbotId) trong database mới là
// ràng buộc thật sự.
func NewDeviceID() string {
	var sb strings.Builder
	sb.WriteString("device_")
	sb.WriteString(FormatUnixMilli(time.Now().UnixMilli()))
	sb.WriteByte('_')
	for i := 0; i < 9; i++ {
		sb.WriteByte(deviceIDCharset[rand.Intn(len(deviceIDCharset))])
	}
	return sb.String()
}

// ResolveDeviceID chọn device identifier theo thứ tự ưu tiên:
// giá trị client gửi trong body → cookie hiện có → sinh mới.
func ResolveDeviceID(clientSupplied, cookieValue string) string {
	if clientSupplied != "" {
		return clientSupplied
	}
	if cookieValue != "" {
		return cookieValue
	}
	return NewDeviceID()
}

// ClientIP trích xuất IP của client theo thứ tự ưu tiên:
// entry đầu của X-Forwarded-For → X-Real-IP → địa chỉ transport → loopback.
func ClientIP(xForwardedFor, xRealIP, remoteAddr string) string {
	if xForwardedFor != "" {
		first := strings.TrimSpace(strings.Split(xForwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	if xRealIP != "" {
		return xRealIP
	}
	if remoteAddr != "" {
		return remoteAddr
	}
	return "127.0.0.1"
}
