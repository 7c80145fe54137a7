package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Asifthisside/chatbot/config"
	"github.com/Asifthisside/chatbot/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

func main() {
	initLogger()
	log := logger.GetAppLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	fiberApp := InitFiberApp(app)

	// Shutdown gọn: đóng server trước, đóng kết nối Mongo sau
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down server...")
		if err := fiberApp.Shutdown(); err != nil {
			log.Errorf("Server shutdown error: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.DB.Close(ctx); err != nil {
			log.Errorf("MongoDB disconnect error: %v", err)
		}
	}()

	log.Infof("Starting Fiber server on %s", cfg.Address)
	if err := fiberApp.Listen(cfg.Address); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}

	log.Info("Server exited")
}
