//go:generate mockery --name ScreenshotRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQLのunique_violation
const pgUniqueViolation = "23505"

// ScreenshotRepository インターフェース
type ScreenshotRepository interface {
	Create(ctx context.Context, tx *gorm.DB, shot *model.Screenshot) error
	FindByChecksum(ctx context.Context, db *gorm.DB, checksum string) (*model.Screenshot, error)
	FindByID(ctx context.Context, db *gorm.DB, screenshotID uint) (*model.Screenshot, error)
}

type gormScreenshotRepository struct{}

func NewGormScreenshotRepository() ScreenshotRepository {
	return &gormScreenshotRepository{}
}

// Create はchecksumのユニークインデックス違反を model.ErrConflict に変換します。
// lookup-before-insertの隙間で同じ画像が同時に来たレースはここで検出される
func (r *gormScreenshotRepository) Create(ctx context.Context, tx *gorm.DB, shot *model.Screenshot) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(shot)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgUniqueViolation {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating screenshot in DB",
			"error", result.Error,
			"checksum", shot.Checksum,
		)
		return fmt.Errorf("gormScreenshotRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormScreenshotRepository) FindByChecksum(ctx context.Context, db *gorm.DB, checksum string) (*model.Screenshot, error) {
	logger := middleware.GetLogger(ctx)
	var shot model.Screenshot
	result := db.WithContext(ctx).Preload("Segments").Where("checksum = ?", checksum).First(&shot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding screenshot by checksum in DB",
			"error", result.Error,
			"checksum", checksum,
		)
		return nil, fmt.Errorf("gormScreenshotRepository.FindByChecksum: %w", result.Error)
	}
	return &shot, nil
}

func (r *gormScreenshotRepository) FindByID(ctx context.Context, db *gorm.DB, screenshotID uint) (*model.Screenshot, error) {
	logger := middleware.GetLogger(ctx)
	var shot model.Screenshot
	result := db.WithContext(ctx).Preload("Segments").Where("screenshot_id = ?", screenshotID).First(&shot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding screenshot by ID in DB",
			"error", result.Error,
			"screenshot_id", screenshotID,
		)
		return nil, fmt.Errorf("gormScreenshotRepository.FindByID: %w", result.Error)
	}
	return &shot, nil
}
