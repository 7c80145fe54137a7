// Package messagesvc - Test tích hợp ghi nhận tin nhắn trên MongoDB thật.
// Bỏ qua khi không có MONGODB_TEST_URI.
package messagesvc

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/database"
	"github.com/Asifthisside/chatbot/internal/registry"
)

// newTestService kết nối MongoDB thật, tạo database riêng cho test (tự drop
// khi xong) và trả về service cùng ObjectID của một chatbot đã insert sẵn.
func newTestService(t *testing.T) (*MessageService, primitive.ObjectID, context.Context) {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("cần MONGODB_TEST_URI trỏ tới MongoDB thật")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database(fmt.Sprintf("chatbot_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	// Unique index (deviceId, chatbotId) phải có mặt để upsert giữ được
	// tính duy nhất của user dưới concurrency
	require.NoError(t, database.CreateIndexes(ctx, db))

	reg := registry.NewRegistry[*mongo.Collection]()
	require.NoError(t, database.RegisterCollections(db, reg))

	svc, err := NewMessageService(reg)
	require.NoError(t, err)

	chatbotId := primitive.NewObjectID()
	_, err = db.Collection(database.ColNames.Chatbots).InsertOne(ctx, bson.M{
		"_id":          chatbotId,
		"propertyName": "Demo",
		"siteUrl":      "https://demo.example.com",
		"name":         "Demo Bot",
	})
	require.NoError(t, err)

	return svc, chatbotId, ctx
}

func recordInput(chatbotId primitive.ObjectID, deviceId string) RecordInput {
	return RecordInput{
		ChatbotId: chatbotId,
		Text:      "xin chào",
		Type:      "user",
		DeviceId:  deviceId,
		IpAddress: "203.0.113.10",
		Browser:   "Chrome",
		OS:        "Windows",
		UserAgent: "Mozilla/5.0",
	}
}

func TestRecordMessage_HaiLanCungThietBi(t *testing.T) {
	svc, chatbotId, ctx := newTestService(t)

	_, first, err := svc.RecordMessage(ctx, recordInput(chatbotId, "device_1_aaaaaaaaa"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.MessageCount)
	assert.Equal(t, first.FirstSeen, first.LastSeen)

	time.Sleep(10 * time.Millisecond)

	msg, second, err := svc.RecordMessage(ctx, recordInput(chatbotId, "device_1_aaaaaaaaa"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "cùng thiết bị phải dùng chung một user")
	assert.Equal(t, int64(2), second.MessageCount)
	assert.Greater(t, second.LastSeen, first.LastSeen)
	assert.Equal(t, first.FirstSeen, second.FirstSeen)
	assert.Equal(t, second.ID, msg.UserId)

	total, err := svc.users.CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRecordMessage_HaiThietBiKhacNhau(t *testing.T) {
	svc, chatbotId, ctx := newTestService(t)

	_, u1, err := svc.RecordMessage(ctx, recordInput(chatbotId, "device_1_aaaaaaaaa"))
	require.NoError(t, err)
	_, u2, err := svc.RecordMessage(ctx, recordInput(chatbotId, "device_2_bbbbbbbbb"))
	require.NoError(t, err)
	assert.NotEqual(t, u1.ID, u2.ID)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalMessages)
	assert.Equal(t, int64(2), stats.TotalDevices)
}

func TestRecordMessage_ChatbotKhongTonTai(t *testing.T) {
	svc, _, ctx := newTestService(t)

	_, _, err := svc.RecordMessage(ctx, recordInput(primitive.NewObjectID(), "device_1_aaaaaaaaa"))
	assert.True(t, common.IsNotFound(err))
}

func TestRecordMessage_GuiDongThoiThietBiMoi(t *testing.T) {
	// Nhiều request đồng thời của một thiết bị chưa từng thấy: các upsert đua
	// nhau insert, bên thua unique index phải retry thành update. Kết quả cuối
	// luôn là đúng một user với messageCount bằng số request.
	svc, chatbotId, ctx := newTestService(t)

	const sends = 8
	errs := make(chan error, sends)
	var wg sync.WaitGroup
	for i := 0; i < sends; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.RecordMessage(ctx, recordInput(chatbotId, "device_3_ccccccccc"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	users, err := svc.users.Find(ctx, bson.M{"deviceId": "device_3_ccccccccc"}, nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(sends), users[0].MessageCount)

	totalMessages, err := svc.CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.Equal(t, int64(sends), totalMessages)
}
