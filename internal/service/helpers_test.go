// internal/service/helpers_test.go
package service

import (
	"testing"
	"time"

	"go_5_kanji_srs/internal/config"
	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/repository"
	"go_5_kanji_srs/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---

// setupTestDB はテストごとに独立したインメモリSQLiteを作ります。
// cache=sharedは同名DSN間で共有されるため、DB名をユニークにして分離する。
// _foreign_keys=on がないとカスケード削除のテストが通らない
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,                                  // 本番と同じエラー変換を通す
	})
	require.NoError(t, err, "failed to connect in-memory database")
	require.NoError(t, repository.Migrate(db), "failed to migrate in-memory database")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App = config.AppConfig{
		DueLimit:    10,
		SearchLimit: 50,
		ListLimit:   100,
	}
	return cfg
}

// --- テストデータ投入ヘルパー ---

func mustCreateVocabulary(t *testing.T, db *gorm.DB, word, reading, meaning string, status model.StudyStatus) *model.Vocabulary {
	t.Helper()
	v := &model.Vocabulary{
		Word:           word,
		Reading:        reading,
		Meaning:        meaning,
		StudyStatus:    status,
		EncounterCount: 1,
		LastSeenAt:     time.Now(),
	}
	require.NoError(t, db.Create(v).Error, "failed to seed vocabulary %q", word)
	return v
}

func mustCreateFlashcard(t *testing.T, db *gorm.DB, vocabID uint, nextReviewAt time.Time) *model.Flashcard {
	t.Helper()
	c := &model.Flashcard{
		VocabID:      vocabID,
		CardType:     model.CardTypeRecognition,
		Status:       model.CardStatusActive,
		EaseFactor:   srs.InitialEase,
		IntervalDays: 0,
		NextReviewAt: nextReviewAt,
	}
	require.NoError(t, db.Create(c).Error, "failed to seed flashcard for vocab %d", vocabID)
	return c
}
