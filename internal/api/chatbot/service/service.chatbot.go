// Package chatbotsvc - service nghiệp vụ cho Chatbot.
package chatbotsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Asifthisside/chatbot/internal/api/base/service"
	"github.com/Asifthisside/chatbot/internal/api/chatbot/models"
	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/database"
	"github.com/Asifthisside/chatbot/internal/registry"
)

// ChatbotService là cấu trúc chứa các phương thức liên quan đến Chatbot
type ChatbotService struct {
	*basesvc.BaseServiceMongoImpl[models.Chatbot]
}

// NewChatbotService tạo mới ChatbotService từ registry collection
func NewChatbotService(reg *registry.Registry[*mongo.Collection]) (*ChatbotService, error) {
	collection, exist := reg.Get(database.ColNames.Chatbots)
	if !exist {
		return nil, fmt.Errorf("failed to get chatbots collection: %v", common.ErrNotFound)
	}

	return &ChatbotService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Chatbot](collection),
	}, nil
}

// FindAll trả về tất cả chatbot, mới nhất trước
func (s *ChatbotService) FindAll(ctx context.Context) ([]models.Chatbot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// Create tạo chatbot mới
func (s *ChatbotService) Create(ctx context.Context, chatbot models.Chatbot) (models.Chatbot, error) {
	return s.InsertOne(ctx, chatbot)
}

// Update cập nhật các field được cung cấp của một chatbot
func (s *ChatbotService) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (models.Chatbot, error) {
	if len(set) == 0 {
		// Không có gì để update — trả về document hiện tại
		return s.FindOneById(ctx, id)
	}
	return s.UpdateById(ctx, id, set)
}

// Delete xóa một chatbot theo ID
func (s *ChatbotService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
