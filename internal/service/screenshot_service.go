//go:generate mockery --name ScreenshotService --output ./mocks --outpkg mocks --structname MockScreenshotService --case=underscore
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScreenshotService インターフェース
type ScreenshotService interface {
	SubmitScreenshot(ctx context.Context, req *model.SubmitScreenshotRequest) (*model.Screenshot, bool, error)
	GetScreenshot(ctx context.Context, screenshotID uint) (*model.Screenshot, error)
}

type screenshotService struct {
	db       *gorm.DB
	shotRepo repository.ScreenshotRepository
}

func NewScreenshotService(db *gorm.DB, shotRepo repository.ScreenshotRepository) ScreenshotService {
	return &screenshotService{
		db:       db,
		shotRepo: shotRepo,
	}
}

// SubmitScreenshot はペイロードのチェックサムで冪等に登録します。
// 同一画像の再送信は新しい行を作らず既存のIDに解決される。
// 戻り値のboolは既存行へのショートサーキットならtrue。
// lookup-before-insertはユニークインデックスに守られており、
// レースで負けた側はErrConflictを受けて勝者の行を読み直す
func (s *screenshotService) SubmitScreenshot(ctx context.Context, req *model.SubmitScreenshotRequest) (*model.Screenshot, bool, error) {
	logger := middleware.GetLogger(ctx)

	if req.ImageBase64 == "" {
		return nil, false, model.NewAppError("VALIDATION_ERROR", "image_base64 is required", "image_base64", model.ErrInvalidInput)
	}

	sum := sha256.Sum256([]byte(req.ImageBase64))
	checksum := hex.EncodeToString(sum[:])
	logger = logger.With("checksum", checksum)

	// 1. 既存行へのショートサーキット
	existing, err := s.shotRepo.FindByChecksum(ctx, s.db, checksum)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error looking up screenshot by checksum", "error", err)
		return nil, false, model.NewAppError("INTERNAL_SERVER_ERROR", "スクリーンショットの確認中にエラーが発生しました。", "", err)
	}
	if existing != nil {
		logger.Info("Duplicate screenshot detected, returning existing row", "screenshot_id", existing.ScreenshotID)
		return existing, true, nil
	}

	// 2. 新規挿入
	shot := &model.Screenshot{
		PublicID:    uuid.New(),
		Checksum:    checksum,
		ImageBase64: req.ImageBase64,
	}
	for i, text := range req.Segments {
		shot.Segments = append(shot.Segments, model.ScreenshotSegment{
			Text:     text,
			Position: i,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.shotRepo.Create(ctx, tx, shot)
	})
	if err != nil {
		// レースで負けた: 勝者の行を読み直して同じIDを返す
		if errors.Is(err, model.ErrConflict) {
			winner, findErr := s.shotRepo.FindByChecksum(ctx, s.db, checksum)
			if findErr != nil {
				logger.Error("Error reloading screenshot after conflict", "error", findErr)
				return nil, false, model.NewAppError("INTERNAL_SERVER_ERROR", "スクリーンショットの取得に失敗しました。", "", findErr)
			}
			logger.Info("Lost insert race, resolved to existing row", "screenshot_id", winner.ScreenshotID)
			return winner, true, nil
		}
		logger.Error("Error creating screenshot", "error", err)
		return nil, false, model.NewAppError("INTERNAL_SERVER_ERROR", "スクリーンショットの登録に失敗しました。", "", err)
	}

	logger.Info("Screenshot stored", "screenshot_id", shot.ScreenshotID)
	return shot, false, nil
}

func (s *screenshotService) GetScreenshot(ctx context.Context, screenshotID uint) (*model.Screenshot, error) {
	shot, err := s.shotRepo.FindByID(ctx, s.db, screenshotID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "screenshot not found", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スクリーンショットの取得に失敗しました。", "", err)
	}
	return shot, nil
}
