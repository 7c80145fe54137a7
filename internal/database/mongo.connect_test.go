// Package database - Test khởi tạo Manager (không cần MongoDB thật).
package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asifthisside/chatbot/config"
)

func TestNewManager_URIRong(t *testing.T) {
	_, err := NewManager(&config.Configuration{})
	assert.Error(t, err)
}

func TestNewManager_URISaiDinhDang(t *testing.T) {
	_, err := NewManager(&config.Configuration{
		MongoDB_ConnectionURI: "not-a-mongodb-uri",
	})
	assert.Error(t, err)
}

func TestNewManager_KhongIO(t *testing.T) {
	// Tạo manager với URI trỏ tới host không tồn tại vẫn phải thành công —
	// driver dial lazy, I/O chỉ xảy ra khi Ensure ping
	m, err := NewManager(&config.Configuration{
		MongoDB_ConnectionURI: "mongodb://definitely-not-a-real-host:27017",
		MongoDB_DBName:        "chatbot",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.NotNil(t, m.Client())
	assert.Equal(t, "chatbot", m.Database().Name())
}

func TestOnReady_KhongChayKhiEnsureThatBai(t *testing.T) {
	m, err := NewManager(&config.Configuration{
		MongoDB_ConnectionURI: "mongodb://definitely-not-a-real-host:27017",
		MongoDB_DBName:        "chatbot",
	})
	require.NoError(t, err)

	called := false
	m.OnReady(func() { called = true })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err = m.Ensure(ctx)

	assert.Error(t, err)
	assert.False(t, called, "hook bootstrap không được chạy khi chưa kết nối được")
}

func TestOnReady_ChayDungMotLanSauKhiKetNoi(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("cần MONGODB_TEST_URI trỏ tới MongoDB thật")
	}

	m, err := NewManager(&config.Configuration{
		MongoDB_ConnectionURI: uri,
		MongoDB_DBName:        "chatbot_test",
	})
	require.NoError(t, err)

	calls := 0
	m.OnReady(func() { calls++ })

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	require.NoError(t, m.Ensure(ctx))
	require.NoError(t, m.Ensure(ctx))
	assert.Equal(t, 1, calls, "hook bootstrap chỉ chạy sau lần kết nối đầu tiên")

	require.NoError(t, m.Close(ctx))
}
