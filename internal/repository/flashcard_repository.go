//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/model"

	"gorm.io/gorm"
)

// FlashcardRepository インターフェース
type FlashcardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, flashcardID uint) (*model.Flashcard, error)
	Update(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	FindDue(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]*model.Flashcard, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountDue(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)
	AverageEaseActive(ctx context.Context, db *gorm.DB) (*float64, error)
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		// (vocab_id, card_type) の複合ユニーク制約違反
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating flashcard in DB",
			"error", result.Error,
			"vocab_id", card.VocabID,
			"card_type", card.CardType,
		)
		return fmt.Errorf("gormFlashcardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, flashcardID uint) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Flashcard
	result := db.WithContext(ctx).Preload("Vocabulary").Where("flashcard_id = ?", flashcardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB",
			"error", result.Error,
			"flashcard_id", flashcardID,
		)
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

// Update はカード行全体を保存します。呼び出し元(Service)が
// トランザクション内で存在確認している前提
func (r *gormFlashcardRepository) Update(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(card)
	if result.Error != nil {
		logger.Error("Error updating flashcard in DB",
			"error", result.Error,
			"flashcard_id", card.FlashcardID,
		)
		return fmt.Errorf("gormFlashcardRepository.Update: %w", result.Error)
	}
	return nil
}

// FindDue は期限到来カードを取得します。
// status=active AND next_review_at <= now、並びは
// next_review_at昇順（古い期限が先）・同時刻はID昇順で決定的にする。
// この順序は公平性のための仕様であり、変更してはいけない。
// (status, next_review_at) の複合インデックスが前提
func (r *gormFlashcardRepository) FindDue(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Preload("Vocabulary").
		Where("status = ? AND next_review_at <= ?", model.CardStatusActive, now).
		Order("next_review_at ASC").
		Order("flashcard_id ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding due flashcards in DB", "error", result.Error)
		return nil, fmt.Errorf("gormFlashcardRepository.FindDue: %w", result.Error)
	}
	return cards, nil
}

func (r *gormFlashcardRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Flashcard{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting flashcards in DB", "error", result.Error)
		return 0, fmt.Errorf("gormFlashcardRepository.Count: %w", result.Error)
	}
	return count, nil
}

func (r *gormFlashcardRepository) CountDue(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Where("status = ? AND next_review_at <= ?", model.CardStatusActive, now).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting due flashcards in DB", "error", result.Error)
		return 0, fmt.Errorf("gormFlashcardRepository.CountDue: %w", result.Error)
	}
	return count, nil
}

// AverageEaseActive はアクティブカードのease平均を返します。
// アクティブカードが0件のときはnil（ゼロ除算の扱いはService層で決める）
func (r *gormFlashcardRepository) AverageEaseActive(ctx context.Context, db *gorm.DB) (*float64, error) {
	logger := middleware.GetLogger(ctx)
	var avg *float64
	result := db.WithContext(ctx).Model(&model.Flashcard{}).
		Where("status = ?", model.CardStatusActive).
		Select("AVG(ease_factor)").
		Scan(&avg)
	if result.Error != nil {
		logger.Error("Error averaging ease factor in DB", "error", result.Error)
		return nil, fmt.Errorf("gormFlashcardRepository.AverageEaseActive: %w", result.Error)
	}
	return avg, nil
}
