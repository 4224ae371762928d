//go:generate mockery --name FlashcardService --output ./mocks --outpkg mocks --structname MockFlashcardService --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_kanji_srs/internal/config"
	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/repository"
	"go_5_kanji_srs/internal/srs"

	"gorm.io/gorm"
)

// FlashcardService インターフェース
type FlashcardService interface {
	CreateFlashcard(ctx context.Context, vocabID uint) (*model.Flashcard, error)
	RecordReview(ctx context.Context, flashcardID uint, rating int) (*model.Flashcard, error)
	GetDueFlashcards(ctx context.Context, limit int) ([]*model.DueFlashcardResponse, error)
}

type flashcardService struct {
	db          *gorm.DB
	cardRepo    repository.FlashcardRepository
	vocabRepo   repository.VocabularyRepository
	sessionRepo repository.ReviewSessionRepository
	cfg         *config.Config
}

func NewFlashcardService(db *gorm.DB, cardRepo repository.FlashcardRepository, vocabRepo repository.VocabularyRepository, sessionRepo repository.ReviewSessionRepository, cfg *config.Config) FlashcardService {
	return &flashcardService{
		db:          db,
		cardRepo:    cardRepo,
		vocabRepo:   vocabRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// CreateFlashcard は語彙をアクティブな学習対象に昇格させます。
// 親語彙が存在しなければ行を作らずにNOT_FOUNDで失敗する
func (s *flashcardService) CreateFlashcard(ctx context.Context, vocabID uint) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx).With("vocab_id", vocabID)

	var created *model.Flashcard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 親語彙の存在確認
		if _, err := s.vocabRepo.FindByID(ctx, tx, vocabID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", fmt.Sprintf("vocabulary id %d not found", vocabID), "", model.ErrNotFound)
			}
			logger.Error("Error checking vocabulary existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の確認中にエラーが発生しました。", "", err)
		}

		// 2. 固定の初期値でカード作成。next_review_atは今（即時レビュー可能）
		now := time.Now()
		card := &model.Flashcard{
			VocabID:            vocabID,
			CardType:           model.CardTypeRecognition,
			Status:             model.CardStatusActive,
			EaseFactor:         srs.InitialEase,
			IntervalDays:       0.0,
			ReviewCount:        0,
			ConsecutiveCorrect: 0,
			Lapses:             0,
			NextReviewAt:       now,
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("CONFLICT", fmt.Sprintf("flashcard already exists for vocabulary id %d", vocabID), "", model.ErrConflict)
			}
			logger.Error("Error creating flashcard", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "フラッシュカードの作成に失敗しました。", "", err)
		}

		created = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 親語彙の表示フィールドをJOINした形で返す
	card, err := s.cardRepo.FindByID(ctx, s.db, created.FlashcardID)
	if err != nil {
		logger.Error("Error reloading created flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "作成したカードの取得に失敗しました。", "", err)
	}

	logger.Info("Flashcard created", "flashcard_id", card.FlashcardID)
	return card, nil
}

// RecordReview はレビュー1回分を記録します。
// カード更新と監査レコード挿入は単一トランザクション:
// 片方だけがコミットされた状態は観測されてはならない。
// 同一カードへの同時レビューはlast-committer-wins（仕様上の許容）
func (s *flashcardService) RecordReview(ctx context.Context, flashcardID uint, rating int) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx).With("flashcard_id", flashcardID, "rating", rating)

	// I/Oの前に入力を検証する（失敗時は一切の状態変更なし）
	r := srs.Rating(rating)
	if !r.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("rating must be 0-3, got %d", rating), "rating", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, flashcardID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", fmt.Sprintf("flashcard id %d not found", flashcardID), "", model.ErrNotFound)
			}
			logger.Error("Error finding flashcard in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得中にエラーが発生しました。", "", err)
		}

		// 監査レコード用のスナップショット
		easeBefore := card.EaseFactor
		intervalBefore := card.IntervalDays

		result := srs.Schedule(r, card.EaseFactor, card.IntervalDays, card.ConsecutiveCorrect)

		now := time.Now()
		card.EaseFactor = result.Ease
		card.IntervalDays = result.Interval
		card.ConsecutiveCorrect = result.Repetitions
		card.ReviewCount++
		if r.IsLapse() {
			card.Lapses++
		}
		card.LastReviewedAt = &now
		card.NextReviewAt = now.Add(time.Duration(result.Interval * float64(24*time.Hour)))

		if err := s.cardRepo.Update(ctx, tx, card); err != nil {
			logger.Error("Error updating flashcard in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの更新に失敗しました。", "", err)
		}

		session := &model.ReviewSession{
			FlashcardID:    card.FlashcardID,
			Quality:        r.Quality(),
			WasCorrect:     r.IsCorrect(),
			EaseBefore:     easeBefore,
			IntervalBefore: intervalBefore,
			EaseAfter:      result.Ease,
			ReviewedAt:     now,
		}
		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			logger.Error("Error creating review session in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "レビュー履歴の記録に失敗しました。", "", err)
		}

		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	// コミット後の状態をリロードして返す
	card, err := s.cardRepo.FindByID(ctx, s.db, flashcardID)
	if err != nil {
		logger.Error("Error reloading flashcard after review", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レビュー後のカード取得に失敗しました。", "", err)
	}

	logger.Info("Review recorded",
		"ease_factor", card.EaseFactor,
		"interval_days", card.IntervalDays,
		"review_count", card.ReviewCount,
	)
	return card, nil
}

// GetDueFlashcards は期限到来カードをnext_review_at昇順で返します。
// limitが0以下なら設定のデフォルト値を使う
func (s *flashcardService) GetDueFlashcards(ctx context.Context, limit int) ([]*model.DueFlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	if limit <= 0 {
		limit = s.cfg.App.DueLimit
	}

	cards, err := s.cardRepo.FindDue(ctx, s.db, time.Now(), limit)
	if err != nil {
		logger.Error("Failed to find due flashcards from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習カードの取得に失敗しました。", "", err)
	}

	responses := make([]*model.DueFlashcardResponse, 0, len(cards))
	for _, c := range cards {
		if c.Vocabulary == nil {
			logger.Warn("Found due flashcard with nil Vocabulary, skipping", "flashcard_id", c.FlashcardID)
			continue
		}
		responses = append(responses, &model.DueFlashcardResponse{
			FlashcardID: c.FlashcardID,
			VocabID:     c.VocabID,
			Word:        c.Vocabulary.Word,
			Reading:     c.Vocabulary.Reading,
			Meaning:     c.Vocabulary.Meaning,
			NextReview:  c.NextReviewAt,
			Interval:    c.IntervalDays,
			EaseFactor:  c.EaseFactor,
			ReviewCount: c.ReviewCount,
		})
	}

	logger.Info("Successfully retrieved due flashcards", "count", len(responses))
	return responses, nil
}
