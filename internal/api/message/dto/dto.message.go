// Package dto - input gửi tin nhắn và các response của domain Message.
package dto

// MessageSendInput là input cho POST /api/messages/send.
// DeviceId do client cung cấp được ưu tiên hơn cookie; Type rỗng mặc định "user".
type MessageSendInput struct {
	ChatbotId string `json:"chatbotId" validate:"required"`
	Text      string `json:"text" validate:"required"`
	Type      string `json:"type" validate:"omitempty,oneof=user bot"`
	DeviceId  string `json:"deviceId"`
}

// SendResultUser là phần thông tin user trong response của send
type SendResultUser struct {
	DeviceId string `json:"deviceId"`
	Browser  string `json:"browser"`
	OS       string `json:"os"`
}

// StatsResult là response của GET /api/messages/stats.
// TotalUsers đếm deviceId duy nhất; TotalDevices đếm document user
// (một thiết bị chat với N chatbot tạo N document).
type StatsResult struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalMessages int64 `json:"totalMessages"`
	TotalDevices  int64 `json:"totalDevices"`
}
