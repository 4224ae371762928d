// internal/service/flashcard_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/repository"
	"go_5_kanji_srs/internal/repository/mocks"
	"go_5_kanji_srs/internal/srs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const easeDelta = 1e-9

// 実リポジトリ+インメモリSQLiteで組み立てたサービス。
// スケジューリングの受け入れシナリオはDBを通して検証する
func newTestFlashcardService(db *gorm.DB) FlashcardService {
	return NewFlashcardService(
		db,
		repository.NewGormFlashcardRepository(),
		repository.NewGormVocabularyRepository(),
		repository.NewGormReviewSessionRepository(),
		newTestConfig(),
	)
}

func Test_flashcardService_CreateFlashcard(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: SM-2初期値でカードが作成される", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestFlashcardService(db)
		vocab := mustCreateVocabulary(t, db, "勉強", "べんきょう", "study", model.StatusNew)

		card, err := svc.CreateFlashcard(ctx, vocab.VocabID)

		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, vocab.VocabID, card.VocabID)
		assert.Equal(t, model.CardTypeRecognition, card.CardType)
		assert.Equal(t, model.CardStatusActive, card.Status)
		assert.InDelta(t, srs.InitialEase, card.EaseFactor, easeDelta)
		assert.Zero(t, card.IntervalDays)
		assert.Zero(t, card.ReviewCount)
		assert.Zero(t, card.ConsecutiveCorrect)
		assert.Zero(t, card.Lapses)
		assert.Nil(t, card.LastReviewedAt)
		// 作成直後からレビュー可能
		assert.WithinDuration(t, time.Now(), card.NextReviewAt, time.Minute)
		// 親語彙の表示フィールドがJOINされている
		require.NotNil(t, card.Vocabulary)
		assert.Equal(t, "勉強", card.Vocabulary.Word)
	})

	t.Run("異常系: 語彙が存在しない", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestFlashcardService(db)

		card, err := svc.CreateFlashcard(ctx, 9999)

		require.Error(t, err)
		assert.Nil(t, card)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Contains(t, err.Error(), "not found")

		// 行は一切作られていない
		var count int64
		require.NoError(t, db.Model(&model.Flashcard{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("異常系: 同じ語彙への二重作成はコンフリクト", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestFlashcardService(db)
		vocab := mustCreateVocabulary(t, db, "漢字", "かんじ", "kanji", model.StatusNew)

		_, err := svc.CreateFlashcard(ctx, vocab.VocabID)
		require.NoError(t, err)

		card, err := svc.CreateFlashcard(ctx, vocab.VocabID)
		require.Error(t, err)
		assert.Nil(t, card)
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

// 成功レビューの間隔進行: 1日 → 6日 → 6日×ease
func Test_flashcardService_RecordReview_IntervalProgression(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestFlashcardService(db)
	vocab := mustCreateVocabulary(t, db, "進歩", "しんぽ", "progress", model.StatusLearning)
	created, err := svc.CreateFlashcard(ctx, vocab.VocabID)
	require.NoError(t, err)

	// 1回目 Easy: 固定1日、ease 2.5→2.6
	card, err := svc.RecordReview(ctx, created.FlashcardID, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, card.IntervalDays, easeDelta)
	assert.InDelta(t, 2.6, card.EaseFactor, easeDelta)
	assert.Equal(t, 1, card.ConsecutiveCorrect)
	assert.Equal(t, 1, card.ReviewCount)

	// 2回目 Easy: 固定6日、ease 2.6→2.7
	card, err = svc.RecordReview(ctx, created.FlashcardID, 3)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, card.IntervalDays, easeDelta)
	assert.InDelta(t, 2.7, card.EaseFactor, easeDelta)
	assert.Equal(t, 2, card.ConsecutiveCorrect)

	// 3回目 Easy: 6.0 × 更新後ease(2.8) = 16.8日
	card, err = svc.RecordReview(ctx, created.FlashcardID, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.8, card.EaseFactor, easeDelta)
	assert.InDelta(t, 16.8, card.IntervalDays, easeDelta)
	assert.Equal(t, 3, card.ConsecutiveCorrect)
	assert.Equal(t, 3, card.ReviewCount)

	// next_review_at は約16.8日先
	wantNext := time.Now().Add(time.Duration(16.8 * float64(24*time.Hour)))
	assert.WithinDuration(t, wantNext, card.NextReviewAt, time.Minute)
}

// 失敗レビュー: 間隔と連続正解をリセットし、lapsesを加算する。easeは減るだけで履歴は消えない
func Test_flashcardService_RecordReview_FailureResets(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestFlashcardService(db)
	vocab := mustCreateVocabulary(t, db, "失敗", "しっぱい", "failure", model.StatusLearning)
	created, err := svc.CreateFlashcard(ctx, vocab.VocabID)
	require.NoError(t, err)

	// Easy×2で進めてから Again
	_, err = svc.RecordReview(ctx, created.FlashcardID, 3)
	require.NoError(t, err)
	_, err = svc.RecordReview(ctx, created.FlashcardID, 3)
	require.NoError(t, err)

	card, err := svc.RecordReview(ctx, created.FlashcardID, 0)
	require.NoError(t, err)
	assert.Zero(t, card.IntervalDays)
	assert.Zero(t, card.ConsecutiveCorrect)
	assert.Equal(t, 1, card.Lapses)
	// ease 2.7 - 0.8 = 1.9
	assert.InDelta(t, 1.9, card.EaseFactor, easeDelta)
	// review_count は失敗でも単調増加
	assert.Equal(t, 3, card.ReviewCount)
	// 即時再レビュー可能
	assert.WithinDuration(t, time.Now(), card.NextReviewAt, time.Minute)
}

// Hardを何度繰り返してもeaseは下限1.3を割らない（ちょうど1.3で止まる）
func Test_flashcardService_RecordReview_EaseFloor(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestFlashcardService(db)
	vocab := mustCreateVocabulary(t, db, "難問", "なんもん", "hard question", model.StatusLearning)
	created, err := svc.CreateFlashcard(ctx, vocab.VocabID)
	require.NoError(t, err)

	var card *model.Flashcard
	for i := 0; i < 10; i++ {
		card, err = svc.RecordReview(ctx, created.FlashcardID, 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, card.EaseFactor, srs.MinEase-easeDelta)
	}

	assert.InDelta(t, srs.MinEase, card.EaseFactor, easeDelta)
	// Hardは品質3なので進行は続くが、失敗閾値(rating<2)によりlapseとして数えられる
	assert.Equal(t, 10, card.ConsecutiveCorrect)
	assert.Equal(t, 10, card.Lapses)
	assert.Equal(t, 10, card.ReviewCount)
}

func Test_flashcardService_RecordReview_WritesAuditRecord(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestFlashcardService(db)
	vocab := mustCreateVocabulary(t, db, "記録", "きろく", "record", model.StatusLearning)
	created, err := svc.CreateFlashcard(ctx, vocab.VocabID)
	require.NoError(t, err)

	_, err = svc.RecordReview(ctx, created.FlashcardID, 3)
	require.NoError(t, err)

	var sessions []model.ReviewSession
	require.NoError(t, db.Where("flashcard_id = ?", created.FlashcardID).Find(&sessions).Error)
	require.Len(t, sessions, 1)

	s := sessions[0]
	assert.Equal(t, 5, s.Quality) // rating 3 → 内部品質5
	assert.True(t, s.WasCorrect)
	assert.InDelta(t, 2.5, s.EaseBefore, easeDelta)
	assert.InDelta(t, 2.6, s.EaseAfter, easeDelta)
	assert.Zero(t, s.IntervalBefore)
	assert.WithinDuration(t, time.Now(), s.ReviewedAt, time.Minute)
}

func Test_flashcardService_RecordReview_InvalidInput(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestFlashcardService(db)
	vocab := mustCreateVocabulary(t, db, "検証", "けんしょう", "validation", model.StatusNew)
	created, err := svc.CreateFlashcard(ctx, vocab.VocabID)
	require.NoError(t, err)

	tests := []struct {
		name   string
		rating int
	}{
		{name: "異常系: ratingが範囲外(4)", rating: 4},
		{name: "異常系: ratingが範囲外(-1)", rating: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := svc.RecordReview(ctx, created.FlashcardID, tt.rating)
			require.Error(t, err)
			assert.Nil(t, card)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}

	// 拒否されたレビューは一切の状態変更を残さない
	var reloaded model.Flashcard
	require.NoError(t, db.First(&reloaded, created.FlashcardID).Error)
	assert.Zero(t, reloaded.ReviewCount)

	var sessionCount int64
	require.NoError(t, db.Model(&model.ReviewSession{}).Count(&sessionCount).Error)
	assert.Zero(t, sessionCount)
}

func Test_flashcardService_RecordReview_NotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestFlashcardService(db)

	card, err := svc.RecordReview(ctx, 9999, 3)

	require.Error(t, err)
	assert.Nil(t, card)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func Test_flashcardService_GetDueFlashcards(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 期限が古い順に返り、未来のカードは含まれない", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestFlashcardService(db)
		now := time.Now()

		words := []struct {
			word string
			due  time.Time
		}{
			{"一", now.Add(-24 * time.Hour)},
			{"三", now.Add(-72 * time.Hour)},
			{"二", now.Add(-48 * time.Hour)},
			{"未来", now.Add(24 * time.Hour)}, // 期限未到来
		}
		for _, w := range words {
			v := mustCreateVocabulary(t, db, w.word, w.word, w.word, model.StatusLearning)
			mustCreateFlashcard(t, db, v.VocabID, w.due)
		}

		due, err := svc.GetDueFlashcards(ctx, 0)

		require.NoError(t, err)
		require.Len(t, due, 3)
		gotWords := []string{due[0].Word, due[1].Word, due[2].Word}
		assert.Equal(t, []string{"三", "二", "一"}, gotWords)
	})

	t.Run("正常系: limit未指定なら設定のデフォルト件数を使う", func(t *testing.T) {
		db := setupTestDB(t)
		cfg := newTestConfig()
		cfg.App.DueLimit = 2
		svc := NewFlashcardService(
			db,
			repository.NewGormFlashcardRepository(),
			repository.NewGormVocabularyRepository(),
			repository.NewGormReviewSessionRepository(),
			cfg,
		)
		now := time.Now()
		for _, w := range []string{"甲", "乙", "丙"} {
			v := mustCreateVocabulary(t, db, w, w, w, model.StatusLearning)
			mustCreateFlashcard(t, db, v.VocabID, now.Add(-time.Hour))
		}

		due, err := svc.GetDueFlashcards(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, due, 2)

		due, err = svc.GetDueFlashcards(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, due, 1)
	})

	t.Run("正常系: retiredカードは期限到来でも返らない", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestFlashcardService(db)
		v := mustCreateVocabulary(t, db, "引退", "いんたい", "retired", model.StatusMastered)
		card := mustCreateFlashcard(t, db, v.VocabID, time.Now().Add(-time.Hour))
		require.NoError(t, db.Model(&model.Flashcard{}).
			Where("flashcard_id = ?", card.FlashcardID).
			Update("status", model.CardStatusRetired).Error)

		due, err := svc.GetDueFlashcards(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, due)
	})

	t.Run("異常系: リポジトリでDBエラー", func(t *testing.T) {
		db := setupTestDB(t)
		mockCardRepo := new(mocks.FlashcardRepository)
		svc := NewFlashcardService(db, mockCardRepo, new(mocks.VocabularyRepository), new(mocks.ReviewSessionRepository), newTestConfig())

		mockCardRepo.On("FindDue", ctx, db, mock.AnythingOfType("time.Time"), 10).
			Return(nil, errors.New("db error finding due cards")).Once()

		due, err := svc.GetDueFlashcards(ctx, 0)

		require.Error(t, err)
		assert.Nil(t, due)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
		mockCardRepo.AssertExpectations(t)
	})
}
