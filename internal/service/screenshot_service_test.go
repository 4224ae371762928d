// internal/service/screenshot_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestScreenshotService(db *gorm.DB) ScreenshotService {
	return NewScreenshotService(db, repository.NewGormScreenshotRepository())
}

func Test_screenshotService_SubmitScreenshot(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 新規スクリーンショットはOCR断片付きで保存される", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestScreenshotService(db)

		req := &model.SubmitScreenshotRequest{
			ImageBase64: "aGVsbG8td29ybGQ=",
			Segments:    []string{"こんにちは", "世界"},
		}

		shot, duplicate, err := svc.SubmitScreenshot(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, shot)
		assert.False(t, duplicate)
		assert.NotZero(t, shot.ScreenshotID)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", shot.PublicID.String())
		assert.Len(t, shot.Checksum, 64) // sha256 hex

		// 断片は位置付きで永続化される
		var segments []model.ScreenshotSegment
		require.NoError(t, db.Where("screenshot_id = ?", shot.ScreenshotID).Order("position ASC").Find(&segments).Error)
		require.Len(t, segments, 2)
		assert.Equal(t, "こんにちは", segments[0].Text)
		assert.Equal(t, 0, segments[0].Position)
		assert.Equal(t, "世界", segments[1].Text)
		assert.Equal(t, 1, segments[1].Position)
	})

	t.Run("正常系: 同一画像の再送信は既存行に解決される（冪等）", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestScreenshotService(db)

		req := &model.SubmitScreenshotRequest{ImageBase64: "c2FtZS1pbWFnZQ=="}

		first, duplicate, err := svc.SubmitScreenshot(ctx, req)
		require.NoError(t, err)
		require.False(t, duplicate)

		second, duplicate, err := svc.SubmitScreenshot(ctx, req)
		require.NoError(t, err)
		assert.True(t, duplicate)
		assert.Equal(t, first.ScreenshotID, second.ScreenshotID)
		assert.Equal(t, first.PublicID, second.PublicID)
		assert.Equal(t, first.Checksum, second.Checksum)

		// 行は増えていない
		var count int64
		require.NoError(t, db.Model(&model.Screenshot{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("正常系: 異なる画像は別の行になる", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestScreenshotService(db)

		first, _, err := svc.SubmitScreenshot(ctx, &model.SubmitScreenshotRequest{ImageBase64: "aW1hZ2UtMQ=="})
		require.NoError(t, err)
		second, duplicate, err := svc.SubmitScreenshot(ctx, &model.SubmitScreenshotRequest{ImageBase64: "aW1hZ2UtMg=="})
		require.NoError(t, err)

		assert.False(t, duplicate)
		assert.NotEqual(t, first.ScreenshotID, second.ScreenshotID)
		assert.NotEqual(t, first.Checksum, second.Checksum)
	})

	t.Run("異常系: 空のペイロードは拒否される", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestScreenshotService(db)

		shot, duplicate, err := svc.SubmitScreenshot(ctx, &model.SubmitScreenshotRequest{ImageBase64: ""})

		require.Error(t, err)
		assert.Nil(t, shot)
		assert.False(t, duplicate)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_screenshotService_GetScreenshot(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestScreenshotService(db)

	t.Run("正常系: 断片付きで取得できる", func(t *testing.T) {
		created, _, err := svc.SubmitScreenshot(ctx, &model.SubmitScreenshotRequest{
			ImageBase64: "Zm9yLWdldC10ZXN0",
			Segments:    []string{"断片"},
		})
		require.NoError(t, err)

		shot, err := svc.GetScreenshot(ctx, created.ScreenshotID)

		require.NoError(t, err)
		assert.Equal(t, created.Checksum, shot.Checksum)
		require.Len(t, shot.Segments, 1)
		assert.Equal(t, "断片", shot.Segments[0].Text)
	})

	t.Run("異常系: 存在しないID", func(t *testing.T) {
		shot, err := svc.GetScreenshot(ctx, 9999)
		require.Error(t, err)
		assert.Nil(t, shot)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
