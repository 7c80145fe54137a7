package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asifthisside/chatbot/internal/logger"
	"github.com/Asifthisside/chatbot/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Chatbots string // Collection cấu hình chatbot (tenant)
	Users    string // Collection visitor ẩn danh, unique theo (deviceId, chatbotId)
	Messages string // Collection tin nhắn chat
}

// ColNames là tên các collection được dùng trong toàn bộ ứng dụng
var ColNames = CollectionName{
	Chatbots: "chatbots",
	Users:    "users",
	Messages: "messages",
}

// RegisterCollections đăng ký handle của các collection vào registry.
// Collection handle của driver không cần I/O, nên hàm này dùng được cả khi
// database chưa kết nối (cold start serverless).
func RegisterCollections(db *mongo.Database, reg *registry.Registry[*mongo.Collection]) error {
	names := []string{ColNames.Chatbots, ColNames.Users, ColNames.Messages}
	for _, name := range names {
		if _, err := reg.Register(name, db.Collection(name)); err != nil {
			return fmt.Errorf("failed to register collection %s: %w", name, err)
		}
	}
	return nil
}

// EnsureCollections đảm bảo các collection cần thiết tồn tại và đăng ký
// chúng vào registry để các service lấy ra theo tên.
func EnsureCollections(db *mongo.Database, reg *registry.Registry[*mongo.Collection]) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names := []string{ColNames.Chatbots, ColNames.Users, ColNames.Messages}

	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	existing := make(map[string]bool, len(collList))
	for _, name := range collList {
		existing[name] = true
	}

	for _, name := range names {
		if !existing[name] {
			logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", name)
			if err := db.CreateCollection(ctx, name); err != nil {
				return fmt.Errorf("failed to create collection %s: %w", name, err)
			}
		}
		if _, err := reg.Register(name, db.Collection(name)); err != nil {
			return fmt.Errorf("failed to register collection %s: %w", name, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", db.Name())
	return nil
}

// CreateIndexes tạo các index cần thiết cho các collection.
//
// Unique compound index (deviceId, chatbotId) trên users là cơ chế đúng đắn
// thật sự cho tính duy nhất của visitor — logic upsert ở service chỉ là
// đường đi, index mới là ràng buộc.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// users: (deviceId, chatbotId) unique — cùng một device có thể có record
	// riêng dưới các chatbot khác nhau
	users := db.Collection(ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "deviceId", Value: 1},
			{Key: "chatbotId", Value: 1},
		},
		Options: options.Index().SetName("user_device_chatbot").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: (chatbotId, lastSeen desc) — danh sách visitor gần nhất theo chatbot
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "chatbotId", Value: 1},
			{Key: "lastSeen", Value: -1},
		},
		Options: options.Index().SetName("user_chatbot_lastseen"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// messages: (chatbotId, timestamp desc) — lịch sử chat mới nhất theo chatbot
	messages := db.Collection(ColNames.Messages)
	if _, err := messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "chatbotId", Value: 1},
			{Key: "timestamp", Value: -1},
		},
		Options: options.Index().SetName("message_chatbot_timestamp"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// chatbots: createdAt desc — list-all mới nhất trước
	chatbots := db.Collection(ColNames.Chatbots)
	if _, err := chatbots.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("chatbot_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
