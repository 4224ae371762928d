// internal/service/main_test.go
package service

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// テスト中はslog.Default()経由のログを抑制する
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}
