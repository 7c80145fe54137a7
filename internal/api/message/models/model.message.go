package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại tin nhắn hợp lệ
const (
	MessageTypeUser = "user"
	MessageTypeBot  = "bot"
)

// Message là một tin nhắn trong hội thoại giữa người dùng và chatbot.
// Timestamp là thời điểm nhận tin (unix millis), dùng để sắp xếp hội thoại.
type Message struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ChatbotId primitive.ObjectID `json:"chatbotId" bson:"chatbotId"`
	UserId    primitive.ObjectID `json:"userId" bson:"userId"`
	Type      string             `json:"type" bson:"type"`
	Text      string             `json:"text" bson:"text"`
	Timestamp int64              `json:"timestamp" bson:"timestamp"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// MessageWithUser là tin nhắn kèm thông tin người gửi, dùng cho màn hình
// quản trị xem hội thoại của một chatbot.
type MessageWithUser struct {
	Message `bson:",inline"`
	User    *MessageUserInfo `json:"userId"` // giữ key userId như response gốc, thay ObjectID bằng object user
}

// MessageUserInfo là tập con field của User được join vào tin nhắn
type MessageUserInfo struct {
	ID           primitive.ObjectID `json:"_id"`
	DeviceId     string             `json:"deviceId"`
	IpAddress    string             `json:"ipAddress"`
	Browser      string             `json:"browser"`
	OS           string             `json:"os"`
	UserAgent    string             `json:"userAgent"`
	FirstSeen    int64              `json:"firstSeen"`
	LastSeen     int64              `json:"lastSeen"`
	MessageCount int64              `json:"messageCount"`
}
