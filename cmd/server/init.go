package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Asifthisside/chatbot/config"
	apirouter "github.com/Asifthisside/chatbot/internal/api/router"
	"github.com/Asifthisside/chatbot/internal/database"
	"github.com/Asifthisside/chatbot/internal/logger"
	"github.com/Asifthisside/chatbot/internal/registry"
)

// App gom toàn bộ dependencies của server: config, database manager,
// registry collection và các handler. Mọi thứ được inject qua constructor,
// không có global state.
type App struct {
	Config   *config.Configuration
	DB       *database.Manager
	Registry *registry.Registry[*mongo.Collection]
	Handlers *apirouter.Handlers
}

// NewApp khởi tạo toàn bộ dependencies của server.
//
// Chế độ long-running: kết nối Mongo ngay, fail thì trả lỗi để process dừng.
// Chế độ serverless: chỉ đăng ký collection handles (không cần I/O) và để
// database gate kết nối lazy ở request đầu tiên; bootstrap collection/index
// chạy best-effort.
func NewApp(cfg *config.Configuration) (*App, error) {
	manager, err := database.NewManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("khởi tạo database manager: %w", err)
	}

	reg := registry.NewRegistry[*mongo.Collection]()
	log := logger.GetAppLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := manager.Ensure(ctx); err != nil {
		if !cfg.Serverless {
			return nil, fmt.Errorf("kết nối MongoDB: %w", err)
		}
		// Serverless: không coi là fatal, request đầu tiên sẽ kết nối lại
		log.WithError(err).Warn("MongoDB chưa kết nối được lúc khởi động, sẽ thử lại theo request")
		if err := database.RegisterCollections(manager.Database(), reg); err != nil {
			return nil, err
		}
		// Bootstrap bị bỏ lỡ lúc khởi động — chạy bù một lần ngay sau khi
		// lazy connect thành công, để unique index (deviceId, chatbotId)
		// tồn tại trước khi traffic ghi dữ liệu
		manager.OnReady(func() {
			bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer bootCancel()
			if err := database.EnsureCollections(manager.Database(), reg); err != nil {
				log.WithError(err).Warn("Không bootstrap được collection sau khi kết nối")
				return
			}
			if err := database.CreateIndexes(bootCtx, manager.Database()); err != nil {
				log.WithError(err).Warn("Không tạo được index sau khi kết nối")
			}
		})
	} else {
		if err := database.EnsureCollections(manager.Database(), reg); err != nil {
			return nil, err
		}
		if err := database.CreateIndexes(ctx, manager.Database()); err != nil {
			// Index tạo sau cũng được, không chặn khởi động
			log.WithError(err).Warn("Không tạo được index lúc khởi động")
		}
	}

	handlers, err := apirouter.NewHandlers(cfg, reg)
	if err != nil {
		return nil, fmt.Errorf("khởi tạo handlers: %w", err)
	}

	return &App{
		Config:   cfg,
		DB:       manager,
		Registry: reg,
		Handlers: handlers,
	}, nil
}
