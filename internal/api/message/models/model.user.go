// Package models - model thuộc domain Message: người dùng cuối (theo thiết bị) và tin nhắn.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho một thiết bị đã chat với một chatbot cụ thể.
// Một document cho mỗi cặp (deviceId, chatbotId) — đảm bảo bằng unique index.
// Cùng một deviceId có thể xuất hiện nhiều lần với các chatbot khác nhau.
type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	DeviceId     string             `json:"deviceId" bson:"deviceId"`
	IpAddress    string             `json:"ipAddress" bson:"ipAddress"`
	Browser      string             `json:"browser" bson:"browser"`
	OS           string             `json:"os" bson:"os"`
	UserAgent    string             `json:"userAgent" bson:"userAgent"`
	ChatbotId    primitive.ObjectID `json:"chatbotId" bson:"chatbotId"`
	FirstSeen    int64              `json:"firstSeen" bson:"firstSeen"`
	LastSeen     int64              `json:"lastSeen" bson:"lastSeen"`
	MessageCount int64              `json:"messageCount" bson:"messageCount"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
