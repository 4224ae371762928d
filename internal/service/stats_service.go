//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --structname MockStatsService --case=underscore
package service

import (
	"context"
	"time"

	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/repository"
	"go_5_kanji_srs/internal/srs"

	"gorm.io/gorm"
)

// StatsService インターフェース。読み取り専用の集計で、
// 空のストアに対してはエラーではなくゼロ値を返す
type StatsService interface {
	GetVocabularyStatistics(ctx context.Context) (*model.VocabularyStatistics, error)
	GetReviewStatistics(ctx context.Context) (*model.ReviewStatistics, error)
}

type statsService struct {
	db          *gorm.DB
	vocabRepo   repository.VocabularyRepository
	cardRepo    repository.FlashcardRepository
	sessionRepo repository.ReviewSessionRepository
}

func NewStatsService(db *gorm.DB, vocabRepo repository.VocabularyRepository, cardRepo repository.FlashcardRepository, sessionRepo repository.ReviewSessionRepository) StatsService {
	return &statsService{
		db:          db,
		vocabRepo:   vocabRepo,
		cardRepo:    cardRepo,
		sessionRepo: sessionRepo,
	}
}

// GetVocabularyStatistics は語彙のロールアップを返します。
// 5つのステータスバケットは存在しなくても常に0で埋める
func (s *statsService) GetVocabularyStatistics(ctx context.Context) (*model.VocabularyStatistics, error) {
	logger := middleware.GetLogger(ctx)

	counts, err := s.vocabRepo.CountByStatus(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count vocabulary by status", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙統計の取得に失敗しました。", "", err)
	}

	encounters, err := s.vocabRepo.SumEncounters(ctx, s.db)
	if err != nil {
		logger.Error("Failed to sum encounters", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "遭遇回数の集計に失敗しました。", "", err)
	}

	stats := &model.VocabularyStatistics{
		NewWords:        counts[model.StatusNew],
		LearningWords:   counts[model.StatusLearning],
		ReviewingWords:  counts[model.StatusReviewing],
		MasteredWords:   counts[model.StatusMastered],
		SuspendedWords:  counts[model.StatusSuspended],
		TotalEncounters: encounters,
	}
	for _, st := range model.AllStudyStatuses {
		stats.TotalWords += counts[st]
	}

	return stats, nil
}

// GetReviewStatistics はレビューのロールアップを返します。
// reviewed_todayはレビュー自身のタイムスタンプの日付で数える。
// average_easeはアクティブカード0件のときSM-2初期値2.5（ゼロ除算回避）。
// longest_streakは未実装のスタブで常に0。
// TODO: longest_streakの定義を決める（日単位の学習継続か、カード単位の連続正解か）
func (s *statsService) GetReviewStatistics(ctx context.Context) (*model.ReviewStatistics, error) {
	logger := middleware.GetLogger(ctx)
	now := time.Now()

	total, err := s.cardRepo.Count(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード総数の取得に失敗しました。", "", err)
	}

	dueToday, err := s.cardRepo.CountDue(ctx, s.db, now)
	if err != nil {
		logger.Error("Failed to count due flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "期限到来カード数の取得に失敗しました。", "", err)
	}

	reviewedToday, err := s.sessionRepo.CountReviewedOn(ctx, s.db, now)
	if err != nil {
		logger.Error("Failed to count today's reviews", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "本日のレビュー数の取得に失敗しました。", "", err)
	}

	avgEase, err := s.cardRepo.AverageEaseActive(ctx, s.db)
	if err != nil {
		logger.Error("Failed to average ease factor", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ease平均の取得に失敗しました。", "", err)
	}
	averageEase := srs.InitialEase
	if avgEase != nil {
		averageEase = *avgEase
	}

	return &model.ReviewStatistics{
		TotalFlashcards: total,
		DueToday:        dueToday,
		ReviewedToday:   reviewedToday,
		AverageEase:     averageEase,
		LongestStreak:   0, // 未実装（上流のTODOを踏襲）
	}, nil
}
