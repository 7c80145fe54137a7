// Package dto - input tạo và cập nhật Chatbot.
package dto

import (
	"github.com/Asifthisside/chatbot/internal/api/chatbot/models"
)

// ChatbotCreateInput là input để tạo chatbot mới.
// Các field enum để rỗng sẽ nhận giá trị mặc định (xem ApplyDefaults).
type ChatbotCreateInput struct {
	PropertyName       string       `json:"propertyName" validate:"required"`
	SiteUrl            string       `json:"siteUrl" validate:"required"`
	Name               string       `json:"name" validate:"required"`
	WelcomeMessage     string       `json:"welcomeMessage"`
	Personality        string       `json:"personality" validate:"omitempty,oneof=Friendly Professional Funny"`
	Theme              string       `json:"theme" validate:"omitempty,oneof=light dark custom"`
	PrimaryColor       string       `json:"primaryColor"`
	Position           string       `json:"position" validate:"omitempty,oneof='Bottom Left' 'Bottom Right'"`
	Icon               string       `json:"icon"`
	IconImage          string       `json:"iconImage"`
	KnowledgeSource    string       `json:"knowledgeSource"`
	Faqs               []models.FAQ `json:"faqs"`
	EnableMongoDBJokes bool         `json:"enableMongoDBJokes"`
	IsActive           *bool        `json:"isActive"` // nil = mặc định true
}

// ToModel chuyển input thành model với các giá trị mặc định đã áp dụng
func (in *ChatbotCreateInput) ToModel() models.Chatbot {
	m := models.Chatbot{
		PropertyName:       in.PropertyName,
		SiteUrl:            in.SiteUrl,
		Name:               in.Name,
		WelcomeMessage:     in.WelcomeMessage,
		Personality:        in.Personality,
		Theme:              in.Theme,
		PrimaryColor:       in.PrimaryColor,
		Position:           in.Position,
		Icon:               in.Icon,
		IconImage:          in.IconImage,
		KnowledgeSource:    in.KnowledgeSource,
		Faqs:               in.Faqs,
		EnableMongoDBJokes: in.EnableMongoDBJokes,
		IsActive:           true,
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
	if m.WelcomeMessage == "" {
		m.WelcomeMessage = models.DefaultWelcomeMessage
	}
	if m.Personality == "" {
		m.Personality = models.DefaultPersonality
	}
	if m.Theme == "" {
		m.Theme = models.DefaultTheme
	}
	if m.PrimaryColor == "" {
		m.PrimaryColor = models.DefaultPrimaryColor
	}
	if m.Position == "" {
		m.Position = models.DefaultPosition
	}
	if m.Icon == "" {
		m.Icon = models.DefaultIcon
	}
	if m.Faqs == nil {
		m.Faqs = []models.FAQ{}
	}
	return m
}

// ChatbotUpdateInput là input để cập nhật chatbot.
// Chỉ các field khác nil mới được ghi đè (partial update).
type ChatbotUpdateInput struct {
	PropertyName       *string      `json:"propertyName,omitempty"`
	SiteUrl            *string      `json:"siteUrl,omitempty"`
	Name               *string      `json:"name,omitempty"`
	WelcomeMessage     *string      `json:"welcomeMessage,omitempty"`
	Personality        *string      `json:"personality,omitempty" validate:"omitempty,oneof=Friendly Professional Funny"`
	Theme              *string      `json:"theme,omitempty" validate:"omitempty,oneof=light dark custom"`
	PrimaryColor       *string      `json:"primaryColor,omitempty"`
	Position           *string      `json:"position,omitempty" validate:"omitempty,oneof='Bottom Left' 'Bottom Right'"`
	Icon               *string      `json:"icon,omitempty"`
	IconImage          *string      `json:"iconImage,omitempty"`
	KnowledgeSource    *string      `json:"knowledgeSource,omitempty"`
	Faqs               []models.FAQ `json:"faqs,omitempty"`
	EnableMongoDBJokes *bool        `json:"enableMongoDBJokes,omitempty"`
	IsActive           *bool        `json:"isActive,omitempty"`
}

// ToSetMap chuyển input thành map các field cần $set (theo bson key)
func (in *ChatbotUpdateInput) ToSetMap() map[string]interface{} {
	set := map[string]interface{}{}
	if in.PropertyName != nil {
		set["propertyName"] = *in.PropertyName
	}
	if in.SiteUrl != nil {
		set["siteUrl"] = *in.SiteUrl
	}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.WelcomeMessage != nil {
		set["welcomeMessage"] = *in.WelcomeMessage
	}
	if in.Personality != nil {
		set["personality"] = *in.Personality
	}
	if in.Theme != nil {
		set["theme"] = *in.Theme
	}
	if in.PrimaryColor != nil {
		set["primaryColor"] = *in.PrimaryColor
	}
	if in.Position != nil {
		set["position"] = *in.Position
	}
	if in.Icon != nil {
		set["icon"] = *in.Icon
	}
	if in.IconImage != nil {
		set["iconImage"] = *in.IconImage
	}
	if in.KnowledgeSource != nil {
		set["knowledgeSource"] = *in.KnowledgeSource
	}
	if in.Faqs != nil {
		set["faqs"] = in.Faqs
	}
	if in.EnableMongoDBJokes != nil {
		set["enableMongoDBJokes"] = *in.EnableMongoDBJokes
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	return set
}
