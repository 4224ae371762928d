//go:generate mockery --name ReviewSessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/model"

	"gorm.io/gorm"
)

// ReviewSessionRepository インターフェース。
// 監査ログは追記専用: CreateとReadのみでUpdate/Deleteは提供しない
type ReviewSessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.ReviewSession) error
	FindByFlashcard(ctx context.Context, db *gorm.DB, flashcardID uint, limit int) ([]*model.ReviewSession, error)
	CountReviewedOn(ctx context.Context, db *gorm.DB, day time.Time) (int64, error)
}

type gormReviewSessionRepository struct{}

func NewGormReviewSessionRepository() ReviewSessionRepository {
	return &gormReviewSessionRepository{}
}

func (r *gormReviewSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.ReviewSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating review session in DB",
			"error", result.Error,
			"flashcard_id", session.FlashcardID,
		)
		return fmt.Errorf("gormReviewSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReviewSessionRepository) FindByFlashcard(ctx context.Context, db *gorm.DB, flashcardID uint, limit int) ([]*model.ReviewSession, error) {
	logger := middleware.GetLogger(ctx)
	var sessions []*model.ReviewSession
	result := db.WithContext(ctx).
		Where("flashcard_id = ?", flashcardID).
		Order("reviewed_at DESC").
		Limit(limit).
		Find(&sessions)
	if result.Error != nil {
		logger.Error("Error finding review sessions in DB",
			"error", result.Error,
			"flashcard_id", flashcardID,
		)
		return nil, fmt.Errorf("gormReviewSessionRepository.FindByFlashcard: %w", result.Error)
	}
	return sessions, nil
}

// CountReviewedOn はレビュー自身のタイムスタンプの日付が指定日のものを数えます。
// 日付関数はドライバ依存なので半開区間 [day, day+1) で比較する
func (r *gormReviewSessionRepository) CountReviewedOn(ctx context.Context, db *gorm.DB, day time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var count int64
	result := db.WithContext(ctx).Model(&model.ReviewSession{}).
		Where("reviewed_at >= ? AND reviewed_at < ?", startOfDay, endOfDay).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting reviews for day in DB", "error", result.Error)
		return 0, fmt.Errorf("gormReviewSessionRepository.CountReviewedOn: %w", result.Error)
	}
	return count, nil
}
