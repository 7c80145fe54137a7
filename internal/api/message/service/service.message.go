// Package messagesvc - service nghiệp vụ cho hội thoại: ghi nhận tin nhắn,
// nhận diện người dùng theo thiết bị, thống kê.
package messagesvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Asifthisside/chatbot/internal/api/base/service"
	chatbotmodels "github.com/Asifthisside/chatbot/internal/api/chatbot/models"
	"github.com/Asifthisside/chatbot/internal/api/message/dto"
	"github.com/Asifthisside/chatbot/internal/api/message/models"
	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/database"
	"github.com/Asifthisside/chatbot/internal/registry"
)

// Giới hạn số bản ghi trả về cho các màn hình quản trị
const listLimit = 100

// MessageService là cấu trúc chứa các phương thức liên quan đến hội thoại.
// Service này làm việc trên cả ba collection: messages, users và chatbots
// (chatbots chỉ để kiểm tra tồn tại trước khi ghi nhận tin nhắn).
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[models.Message]
	users    *basesvc.BaseServiceMongoImpl[models.User]
	chatbots *basesvc.BaseServiceMongoImpl[chatbotmodels.Chatbot]
}

// NewMessageService tạo mới MessageService từ registry collection
func NewMessageService(reg *registry.Registry[*mongo.Collection]) (*MessageService, error) {
	messages, exist := reg.Get(database.ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("failed to get messages collection: %v", common.ErrNotFound)
	}
	users, exist := reg.Get(database.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	chatbots, exist := reg.Get(database.ColNames.Chatbots)
	if !exist {
		return nil, fmt.Errorf("failed to get chatbots collection: %v", common.ErrNotFound)
	}

	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Message](messages),
		users:                basesvc.NewBaseServiceMongo[models.User](users),
		chatbots:             basesvc.NewBaseServiceMongo[chatbotmodels.Chatbot](chatbots),
	}, nil
}

// RecordInput gom thông tin đã chuẩn hóa từ request để ghi nhận một tin nhắn
type RecordInput struct {
	ChatbotId primitive.ObjectID
	Text      string
	Type      string
	DeviceId  string
	IpAddress string
	Browser   string
	OS        string
	UserAgent string
}

// RecordMessage ghi nhận một tin nhắn: kiểm tra chatbot tồn tại, upsert user
// theo (deviceId, chatbotId) rồi insert message.
//
// Upsert user là một lệnh FindOneAndUpdate duy nhất: hai request đồng thời của
// cùng một thiết bị mới không thể tạo hai user — unique index trên
// (deviceId, chatbotId) cộng upsert atomic loại bỏ race find-then-insert.
func (s *MessageService) RecordMessage(ctx context.Context, input RecordInput) (models.Message, models.User, error) {
	var zeroMsg models.Message
	var zeroUser models.User

	exists, err := s.chatbots.DocumentExists(ctx, bson.M{"_id": input.ChatbotId})
	if err != nil {
		return zeroMsg, zeroUser, err
	}
	if !exists {
		return zeroMsg, zeroUser, common.ErrNotFound
	}

	now := time.Now().UnixMilli()

	// Thông tin thiết bị chỉ ghi khi tạo mới; lastSeen và ipAddress luôn cập nhật
	filter := bson.M{"deviceId": input.DeviceId, "chatbotId": input.ChatbotId}
	update := bson.M{
		"$setOnInsert": bson.M{
			"deviceId":  input.DeviceId,
			"chatbotId": input.ChatbotId,
			"browser":   input.Browser,
			"os":        input.OS,
			"userAgent": input.UserAgent,
			"firstSeen": now,
			"createdAt": now,
		},
		"$set": bson.M{
			"lastSeen":  now,
			"ipAddress": input.IpAddress,
			"updatedAt": now,
		},
		"$inc": bson.M{"messageCount": 1},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	user, err := s.users.FindOneAndUpdate(ctx, filter, update, opts)
	if common.IsDuplicate(err) {
		// Hai upsert cùng lúc cho một device mới: cả hai không match filter,
		// cả hai insert, một bên thua unique index. Chạy lại — lần này document
		// đã tồn tại nên upsert trở thành update thuần.
		user, err = s.users.FindOneAndUpdate(ctx, filter, update, opts)
	}
	if err != nil {
		return zeroMsg, zeroUser, err
	}

	message, err := s.InsertOne(ctx, models.Message{
		ChatbotId: input.ChatbotId,
		UserId:    user.ID,
		Type:      input.Type,
		Text:      input.Text,
		Timestamp: now,
	})
	if err != nil {
		return zeroMsg, zeroUser, err
	}

	return message, user, nil
}

// Stats trả về thống kê toàn hệ thống.
// totalUsers đếm deviceId duy nhất (một người trên nhiều chatbot tính một);
// totalDevices đếm document user (mỗi cặp thiết bị-chatbot tính một).
func (s *MessageService) Stats(ctx context.Context) (dto.StatsResult, error) {
	var result dto.StatsResult

	deviceIds, err := s.users.Distinct(ctx, "deviceId", bson.D{})
	if err != nil {
		return result, err
	}

	totalMessages, err := s.CountDocuments(ctx, bson.D{})
	if err != nil {
		return result, err
	}

	totalDevices, err := s.users.CountDocuments(ctx, bson.D{})
	if err != nil {
		return result, err
	}

	result.TotalUsers = int64(len(deviceIds))
	result.TotalMessages = totalMessages
	result.TotalDevices = totalDevices
	return result, nil
}

// UsersByChatbot trả về danh sách user của một chatbot, hoạt động gần nhất trước
func (s *MessageService) UsersByChatbot(ctx context.Context, chatbotId primitive.ObjectID) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "lastSeen", Value: -1}}).
		SetLimit(listLimit)
	return s.users.Find(ctx, bson.M{"chatbotId": chatbotId}, opts)
}

// MessagesByChatbot trả về tin nhắn của một chatbot kèm thông tin người gửi,
// mới nhất trước. User đã bị xóa thì field user là null, tin nhắn vẫn trả về.
func (s *MessageService) MessagesByChatbot(ctx context.Context, chatbotId primitive.ObjectID) ([]models.MessageWithUser, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(listLimit)
	messages, err := s.Find(ctx, bson.M{"chatbotId": chatbotId}, opts)
	if err != nil {
		return nil, err
	}

	// Join thủ công: gom userId rồi query một lần, tránh N+1
	idSet := make(map[primitive.ObjectID]struct{}, len(messages))
	ids := make([]primitive.ObjectID, 0, len(messages))
	for _, m := range messages {
		if _, seen := idSet[m.UserId]; !seen {
			idSet[m.UserId] = struct{}{}
			ids = append(ids, m.UserId)
		}
	}

	userById := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) > 0 {
		users, err := s.users.FindManyByIds(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			userById[u.ID] = u
		}
	}

	result := make([]models.MessageWithUser, 0, len(messages))
	for _, m := range messages {
		item := models.MessageWithUser{Message: m}
		if u, ok := userById[m.UserId]; ok {
			item.User = &models.MessageUserInfo{
				ID:           u.ID,
				DeviceId:     u.DeviceId,
				IpAddress:    u.IpAddress,
				Browser:      u.Browser,
				OS:           u.OS,
				UserAgent:    u.UserAgent,
				FirstSeen:    u.FirstSeen,
				LastSeen:     u.LastSeen,
				MessageCount: u.MessageCount,
			}
		}
		result = append(result, item)
	}
	return result, nil
}
