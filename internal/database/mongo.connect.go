// Package database quản lý kết nối MongoDB và bootstrap collections/indexes.
package database

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asifthisside/chatbot/config"
	"github.com/Asifthisside/chatbot/internal/common"
	"github.com/Asifthisside/chatbot/internal/logger"
)

// Khoảng thời gian chờ khi có một connect attempt khác đang chạy
const connectWaitInterval = 1 * time.Second

// Manager quản lý kết nối MongoDB của process. Được tạo một lần lúc khởi động
// và inject vào các handler — không dùng biến toàn cục.
//
// Trong môi trường scale-to-zero, mỗi invocation có thể bắt đầu cold không có
// kết nối sẵn: Ensure phải rẻ khi đã warm (chỉ đọc atomic flag, không I/O) và
// bounded khi cold (timeout ở mức driver, không buffer request phía sau
// kết nối chết).
type Manager struct {
	cfg    *config.Configuration
	client *mongo.Client

	ready      atomic.Bool // Kết nối đã được verify bằng ping
	mu         sync.Mutex  // Bảo vệ connecting
	connecting bool        // Có một connect attempt đang chạy

	onReady   func()    // Chạy một lần sau lần connect thành công đầu tiên
	readyOnce sync.Once // Đảm bảo onReady chỉ chạy một lần
}

// OnReady đăng ký hook chạy đúng một lần sau lần Ensure thành công đầu tiên.
// Dùng cho bootstrap (tạo collection/index) khi khởi động không kết nối được
// và kết nối chỉ thành công lazy ở request sau. Phải gọi trước khi server
// bắt đầu nhận request — không an toàn khi gọi concurrent với Ensure.
func (m *Manager) OnReady(f func()) {
	m.onReady = f
}

// NewManager tạo Manager với client MongoDB đã cấu hình nhưng CHƯA verify.
// Driver Go dial lazy — tạo client không có I/O; Ensure thực hiện ping verify.
func NewManager(cfg *config.Configuration) (*Manager, error) {
	if cfg.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Pool size 1: môi trường chạy scale bằng cách spawn nhiều instance song song,
	// không phải bằng concurrency trong một process.
	clientOptions := options.Client().ApplyURI(cfg.MongoDB_ConnectionURI).
		SetMaxPoolSize(1).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	return &Manager{cfg: cfg, client: client}, nil
}

// Ensure xác nhận kết nối MongoDB sẵn sàng. Idempotent, an toàn khi gọi
// concurrent và trước mọi request path chạm tới storage.
//
//   - Đã ready: trả về ngay, không I/O.
//   - Một connect attempt đang chạy: chờ một khoảng ngắn rồi kiểm tra lại
//     một lần — không spawn connect attempt thứ hai từ cùng process.
//   - Chưa có gì chạy: ping với timeout bounded.
//
// Thất bại trả về common.ErrConnection (503) thay vì treo request.
func (m *Manager) Ensure(ctx context.Context) error {
	if m.ready.Load() {
		return nil
	}

	m.mu.Lock()
	if m.connecting {
		m.mu.Unlock()
		// Một handler khác đang connect — chờ rồi re-check một lần
		time.Sleep(connectWaitInterval)
		if m.ready.Load() {
			return nil
		}
		return common.ErrConnection
	}
	m.connecting = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.connecting = false
		m.mu.Unlock()
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := m.client.Ping(pingCtx, nil); err != nil {
		logger.WithError(err).Error("Failed to ping MongoDB")
		return common.ErrConnection
	}

	m.ready.Store(true)
	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	if m.onReady != nil {
		m.readyOnce.Do(m.onReady)
	}
	return nil
}

// Client trả về client MongoDB
func (m *Manager) Client() *mongo.Client {
	return m.client
}

// Database trả về database handle theo tên trong cấu hình
func (m *Manager) Database() *mongo.Database {
	return m.client.Database(m.cfg.MongoDB_DBName)
}

// Close đóng kết nối MongoDB
func (m *Manager) Close(ctx context.Context) error {
	m.ready.Store(false)
	if err := m.client.Disconnect(ctx); err != nil {
		logger.WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
