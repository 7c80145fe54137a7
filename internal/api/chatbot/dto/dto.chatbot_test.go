// Package dto - Test áp giá trị mặc định và partial update cho Chatbot.
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Asifthisside/chatbot/internal/api/chatbot/models"
	"github.com/Asifthisside/chatbot/internal/common"
)

func TestChatbotCreateInput_ToModel_ApDungMacDinh(t *testing.T) {
	input := ChatbotCreateInput{
		PropertyName: "Demo Site",
		SiteUrl:      "https://demo.example.com",
		Name:         "Demo Bot",
	}

	m := input.ToModel()

	assert.Equal(t, models.DefaultWelcomeMessage, m.WelcomeMessage)
	assert.Equal(t, models.DefaultPersonality, m.Personality)
	assert.Equal(t, models.DefaultTheme, m.Theme)
	assert.Equal(t, models.DefaultPrimaryColor, m.PrimaryColor)
	assert.Equal(t, models.DefaultPosition, m.Position)
	assert.Equal(t, models.DefaultIcon, m.Icon)
	assert.True(t, m.IsActive)
	assert.NotNil(t, m.Faqs) // luôn là mảng, không phải nil, để JSON trả về []
}

func TestChatbotCreateInput_ToModel_GiuGiaTriNguoiDung(t *testing.T) {
	isActive := false
	input := ChatbotCreateInput{
		PropertyName:   "Shop",
		SiteUrl:        "https://shop.example.com",
		Name:           "Shop Bot",
		WelcomeMessage: "Xin chào!",
		Personality:    "Professional",
		Theme:          "dark",
		PrimaryColor:   "#000000",
		Position:       "Bottom Left",
		Icon:           "🤖",
		IsActive:       &isActive,
		Faqs: []models.FAQ{
			{Question: "Ship bao lâu?", Answer: "2-3 ngày"},
		},
	}

	m := input.ToModel()

	assert.Equal(t, "Xin chào!", m.WelcomeMessage)
	assert.Equal(t, "Professional", m.Personality)
	assert.Equal(t, "dark", m.Theme)
	assert.Equal(t, "#000000", m.PrimaryColor)
	assert.Equal(t, "Bottom Left", m.Position)
	assert.Equal(t, "🤖", m.Icon)
	assert.False(t, m.IsActive)
	assert.Len(t, m.Faqs, 1)
}

func TestChatbotCreateInput_Validate(t *testing.T) {
	// Thiếu field bắt buộc
	err := common.ValidateStruct(&ChatbotCreateInput{Name: "x"})
	assert.Error(t, err)

	// Enum sai bị từ chối
	err = common.ValidateStruct(&ChatbotCreateInput{
		PropertyName: "a", SiteUrl: "b", Name: "c",
		Personality: "Sarcastic",
	})
	assert.Error(t, err)

	// Enum có khoảng trắng hợp lệ
	err = common.ValidateStruct(&ChatbotCreateInput{
		PropertyName: "a", SiteUrl: "b", Name: "c",
		Position: "Bottom Left",
	})
	assert.NoError(t, err)
}

func TestChatbotUpdateInput_ToSetMap(t *testing.T) {
	name := "Bot mới"
	active := false
	input := ChatbotUpdateInput{
		Name:     &name,
		IsActive: &active,
	}

	set := input.ToSetMap()

	assert.Equal(t, map[string]interface{}{
		"name":     "Bot mới",
		"isActive": false,
	}, set)
}

func TestChatbotUpdateInput_ToSetMap_Rong(t *testing.T) {
	set := (&ChatbotUpdateInput{}).ToSetMap()
	assert.Empty(t, set)
}
