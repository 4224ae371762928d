// internal/model/review.go
package model

import "time"

// ReviewSession はレビュー1回分の監査レコードです。
// 追記専用で、一度書いたら更新・削除しない。
type ReviewSession struct {
	SessionID      uint      `gorm:"primaryKey;autoIncrement" json:"session_id"`
	FlashcardID    uint      `gorm:"not null;index" json:"flashcard_id"`
	Quality        int       `gorm:"not null;check:chk_review_quality,quality BETWEEN 0 AND 5" json:"quality"` // 内部0-5スケール
	WasCorrect     bool      `gorm:"not null" json:"was_correct"`
	EaseBefore     float64   `gorm:"not null" json:"ease_before"`
	IntervalBefore float64   `gorm:"not null" json:"interval_before"`
	EaseAfter      float64   `gorm:"not null" json:"ease_after"`
	ReviewedAt     time.Time `gorm:"not null;index" json:"reviewed_at"`

	// 関連 (Preload用)
	Flashcard *Flashcard `gorm:"belongsTo;foreignKey:FlashcardID;references:FlashcardID" json:"-"`
}

func (ReviewSession) TableName() string {
	return "review_sessions"
}

// レビュー統計レスポンスDTO。
// longest_streak は上流でも未実装のスタブで、常に0を返す（勝手に定義しない）。
type ReviewStatistics struct {
	TotalFlashcards int64   `json:"total_flashcards"`
	DueToday        int64   `json:"due_today"`
	ReviewedToday   int64   `json:"reviewed_today"`
	AverageEase     float64 `json:"average_ease"`
	LongestStreak   int64   `json:"longest_streak"`
}
