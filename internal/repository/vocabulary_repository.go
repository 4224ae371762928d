//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
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

// VocabularyRepository インターフェース
type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error
	FindByID(ctx context.Context, db *gorm.DB, vocabID uint) (*model.Vocabulary, error)
	FindByWord(ctx context.Context, db *gorm.DB, word string) (*model.Vocabulary, error)
	RecordEncounter(ctx context.Context, tx *gorm.DB, vocabID uint, seenAt time.Time) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, vocabID uint, status model.StudyStatus, seenAt time.Time) error
	Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]*model.Vocabulary, error)
	ListByStatus(ctx context.Context, db *gorm.DB, status model.StudyStatus, limit int) ([]*model.Vocabulary, error)
	Delete(ctx context.Context, tx *gorm.DB, vocabID uint) error
	CountByStatus(ctx context.Context, db *gorm.DB) (map[model.StudyStatus]int64, error)
	SumEncounters(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating vocabulary in DB",
			"error", result.Error,
			"word", vocab.Word,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, vocabID uint) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocab model.Vocabulary
	result := db.WithContext(ctx).Where("vocab_id = ?", vocabID).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary by ID in DB",
			"error", result.Error,
			"vocab_id", vocabID,
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &vocab, nil
}

func (r *gormVocabularyRepository) FindByWord(ctx context.Context, db *gorm.DB, word string) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocab model.Vocabulary
	result := db.WithContext(ctx).Where("word = ?", word).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary by word in DB",
			"error", result.Error,
			"word", word,
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByWord: %w", result.Error)
	}
	return &vocab, nil
}

// RecordEncounter は遭遇回数をインクリメントし、last_seen_atを更新します。
// encounter_countは単調増加（デクリメントするAPIは存在しない）
func (r *gormVocabularyRepository) RecordEncounter(ctx context.Context, tx *gorm.DB, vocabID uint, seenAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).
		Where("vocab_id = ?", vocabID).
		Updates(map[string]interface{}{
			"encounter_count": gorm.Expr("encounter_count + 1"),
			"last_seen_at":    seenAt,
		})
	if result.Error != nil {
		logger.Error("Error recording encounter in DB",
			"error", result.Error,
			"vocab_id", vocabID,
		)
		return fmt.Errorf("gormVocabularyRepository.RecordEncounter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpdateStatus はステータスを更新し、last_seen_atも更新します
// （ステータス遷移は遭遇に準ずるイベントとして扱う）。
// 0行更新は握り潰さずErrNotFoundとして報告する
func (r *gormVocabularyRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, vocabID uint, status model.StudyStatus, seenAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).
		Where("vocab_id = ?", vocabID).
		Updates(map[string]interface{}{
			"study_status": status,
			"last_seen_at": seenAt,
		})
	if result.Error != nil {
		logger.Error("Error updating vocabulary status in DB",
			"error", result.Error,
			"vocab_id", vocabID,
			"status", string(status),
		)
		return fmt.Errorf("gormVocabularyRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Search は表記・読み・意味の部分一致で検索します。
// 並び順は遭遇回数の多い順、次に最後に見た日時の新しい順
func (r *gormVocabularyRepository) Search(ctx context.Context, db *gorm.DB, query string, limit int) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	pattern := "%" + query + "%"
	result := db.WithContext(ctx).
		Where("word LIKE ? OR reading LIKE ? OR meaning LIKE ?", pattern, pattern, pattern).
		Order("encounter_count DESC").
		Order("last_seen_at DESC").
		Limit(limit).
		Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error searching vocabulary in DB",
			"error", result.Error,
			"query", query,
		)
		return nil, fmt.Errorf("gormVocabularyRepository.Search: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabularyRepository) ListByStatus(ctx context.Context, db *gorm.DB, status model.StudyStatus, limit int) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	result := db.WithContext(ctx).
		Where("study_status = ?", status).
		Order("last_seen_at DESC").
		Limit(limit).
		Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error listing vocabulary by status in DB",
			"error", result.Error,
			"status", string(status),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.ListByStatus: %w", result.Error)
	}
	return vocabs, nil
}

// Delete は物理削除です。FKのON DELETE CASCADEでカードも一緒に消える
func (r *gormVocabularyRepository) Delete(ctx context.Context, tx *gorm.DB, vocabID uint) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Delete(&model.Vocabulary{}, vocabID)
	if result.Error != nil {
		logger.Error("Error deleting vocabulary in DB",
			"error", result.Error,
			"vocab_id", vocabID,
		)
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// CountByStatus はステータスごとの件数を返します。
// 存在しないバケットは呼び出し側(Service)で0に初期化する
func (r *gormVocabularyRepository) CountByStatus(ctx context.Context, db *gorm.DB) (map[model.StudyStatus]int64, error) {
	logger := middleware.GetLogger(ctx)
	var rows []struct {
		StudyStatus model.StudyStatus
		Count       int64
	}
	result := db.WithContext(ctx).Model(&model.Vocabulary{}).
		Select("study_status, COUNT(*) AS count").
		Group("study_status").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting vocabulary by status in DB", "error", result.Error)
		return nil, fmt.Errorf("gormVocabularyRepository.CountByStatus: %w", result.Error)
	}
	counts := make(map[model.StudyStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.StudyStatus] = row.Count
	}
	return counts, nil
}

func (r *gormVocabularyRepository) SumEncounters(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var total *int64
	result := db.WithContext(ctx).Model(&model.Vocabulary{}).
		Select("SUM(encounter_count)").
		Scan(&total)
	if result.Error != nil {
		logger.Error("Error summing encounters in DB", "error", result.Error)
		return 0, fmt.Errorf("gormVocabularyRepository.SumEncounters: %w", result.Error)
	}
	// 空テーブルではSUMがNULLになる
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
