// internal/model/flashcard.go
package model

import (
	"time"
)

// カード種別。現状は認識（表→裏）カードのみ
const CardTypeRecognition = "recognition"

// カードステータス
const (
	CardStatusActive  = "active"
	CardStatusRetired = "retired"
)

// Flashcard はSM-2の状態を持つフラッシュカードを表します。
// 1つの語彙につきカード種別ごとに1枚（複合ユニーク制約）。
// ease_factor の下限 1.3 はスケジューラ側でもクランプするが、
// 多層防御としてスキーマ側のCHECKでも拒否する。
type Flashcard struct {
	FlashcardID        uint       `gorm:"primaryKey;autoIncrement" json:"flashcard_id"`
	VocabID            uint       `gorm:"not null;index;uniqueIndex:uq_flashcards_vocab_type,priority:1" json:"vocab_id"`
	CardType           string     `gorm:"not null;default:recognition;uniqueIndex:uq_flashcards_vocab_type,priority:2" json:"card_type"`
	Status             string     `gorm:"not null;default:active;index:idx_flashcards_due,priority:1;check:chk_flashcards_status,status IN ('active','retired')" json:"status"`
	EaseFactor         float64    `gorm:"not null;default:2.5;check:chk_flashcards_ease,ease_factor >= 1.3" json:"ease_factor"`
	IntervalDays       float64    `gorm:"not null;default:0;check:chk_flashcards_interval,interval_days >= 0" json:"interval_days"`
	ReviewCount        int        `gorm:"not null;default:0" json:"review_count"`
	ConsecutiveCorrect int        `gorm:"not null;default:0" json:"consecutive_correct"`
	Lapses             int        `gorm:"not null;default:0" json:"lapses"`
	NextReviewAt       time.Time  `gorm:"not null;index:idx_flashcards_due,priority:2" json:"next_review_at"`
	LastReviewedAt     *time.Time `json:"last_reviewed_at,omitempty"` // 初回レビューまではNULL
	CreatedAt          time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// 関連 (Preload用)
	Vocabulary *Vocabulary `gorm:"belongsTo;foreignKey:VocabID;references:VocabID" json:"-"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// カード作成リクエストDTO
type CreateFlashcardRequest struct {
	VocabID uint `json:"vocab_id" validate:"required"`
}

// カード作成レスポンスDTO（親語彙の表示フィールドをJOINして返す）
type FlashcardResponse struct {
	Success     bool    `json:"success"`
	FlashcardID uint    `json:"flashcard_id"`
	VocabID     uint    `json:"vocab_id"`
	Word        string  `json:"word"`
	Reading     string  `json:"reading"`
	Meaning     string  `json:"meaning"`
	EaseFactor  float64 `json:"ease_factor"`
	Interval    float64 `json:"interval"`
	ReviewCount int     `json:"review_count"`
	Status      string  `json:"status"`
	CardType    string  `json:"card_type"`
}

// レビュー送信リクエストDTO。0=Again, 1=Hard, 2=Medium, 3=Easy
// ratingは0が有効値のためポインタで受けてrequiredを効かせる
type SubmitReviewRequest struct {
	Rating *int `json:"rating" validate:"required,min=0,max=3"`
}

// レビュー結果レスポンスDTO
type ReviewResponse struct {
	Success            bool      `json:"success"`
	FlashcardID        uint      `json:"flashcard_id"`
	EaseFactor         float64   `json:"ease_factor"`
	Interval           float64   `json:"interval"`
	ReviewCount        int       `json:"review_count"`
	ConsecutiveCorrect int       `json:"consecutive_correct"`
	Lapses             int       `json:"lapses"`
	NextReview         time.Time `json:"next_review"`
	RatingSubmitted    int       `json:"rating_submitted"`
}

// 復習期限到来カードのレスポンスDTO
type DueFlashcardResponse struct {
	FlashcardID uint      `json:"flashcard_id"`
	VocabID     uint      `json:"vocab_id"`
	Word        string    `json:"word"`
	Reading     string    `json:"reading"`
	Meaning     string    `json:"meaning"`
	NextReview  time.Time `json:"next_review"`
	Interval    float64   `json:"interval"`
	EaseFactor  float64   `json:"ease_factor"`
	ReviewCount int       `json:"review_count"`
}
