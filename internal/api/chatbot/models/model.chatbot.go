// Package models - model Chatbot: cấu hình một widget chatbot nhúng trên website khách.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FAQ là một cặp câu hỏi - câu trả lời soạn sẵn của chatbot
type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// Chatbot định nghĩa cấu hình một chatbot.
// Personality/Theme/Position là enum đóng, validate ở tầng DTO.
// Timestamps lưu dạng unix millis, thống nhất toàn hệ thống.
type Chatbot struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PropertyName       string             `json:"propertyName" bson:"propertyName"`
	SiteUrl            string             `json:"siteUrl" bson:"siteUrl"`
	Name               string             `json:"name" bson:"name"`
	WelcomeMessage     string             `json:"welcomeMessage" bson:"welcomeMessage"`
	Personality        string             `json:"personality" bson:"personality"`
	Theme              string             `json:"theme" bson:"theme"`
	PrimaryColor       string             `json:"primaryColor" bson:"primaryColor"`
	Position           string             `json:"position" bson:"position"`
	Icon               string             `json:"icon" bson:"icon"`
	IconImage          string             `json:"iconImage" bson:"iconImage"`
	KnowledgeSource    string             `json:"knowledgeSource" bson:"knowledgeSource"`
	Faqs               []FAQ              `json:"faqs" bson:"faqs"`
	EnableMongoDBJokes bool               `json:"enableMongoDBJokes" bson:"enableMongoDBJokes"`
	IsActive           bool               `json:"isActive" bson:"isActive"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}

// Giá trị mặc định khi tạo chatbot mới
const (
	DefaultWelcomeMessage = "Hello! How can I help you today?"
	DefaultPersonality    = "Friendly"
	DefaultTheme          = "light"
	DefaultPrimaryColor   = "#3B82F6"
	DefaultPosition       = "Bottom Right"
	DefaultIcon           = "💬"
)
