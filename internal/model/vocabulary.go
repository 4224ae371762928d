// internal/model/vocabulary.go
package model

import (
	"time"
)

// StudyStatus は語彙の学習ステータスを表します
type StudyStatus string

const (
	StatusNew       StudyStatus = "new"
	StatusLearning  StudyStatus = "learning"
	StatusReviewing StudyStatus = "reviewing"
	StatusMastered  StudyStatus = "mastered"
	StatusSuspended StudyStatus = "suspended"
)

// AllStudyStatuses は統計の集計などで全バケットを列挙するために使います
var AllStudyStatuses = []StudyStatus{
	StatusNew,
	StatusLearning,
	StatusReviewing,
	StatusMastered,
	StatusSuspended,
}

// IsValid は5値のいずれかであることを検証します
func (s StudyStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusReviewing, StatusMastered, StatusSuspended:
		return true
	}
	return false
}

// Vocabulary は学習対象の単語（語彙エントリ）を表します
type Vocabulary struct {
	VocabID        uint        `gorm:"primaryKey;autoIncrement" json:"vocab_id"`
	Word           string      `gorm:"not null;index" json:"word"`          // 表記（漢字・かな）
	Reading        string      `gorm:"not null" json:"reading"`             // 読み（かな）
	Romaji         *string     `json:"romaji,omitempty"`                    // ローマ字読み（任意）
	Meaning        string      `gorm:"not null" json:"meaning"`             // 英語の意味
	PartOfSpeech   *string     `json:"part_of_speech,omitempty"`            // 品詞（任意）
	JLPTLevel      *string     `gorm:"check:chk_vocabulary_jlpt,jlpt_level IN ('N1','N2','N3','N4','N5')" json:"jlpt_level,omitempty"`
	StudyStatus    StudyStatus `gorm:"not null;default:new;check:chk_vocabulary_status,study_status IN ('new','learning','reviewing','mastered','suspended')" json:"study_status"`
	EncounterCount int         `gorm:"not null;default:1;check:chk_vocabulary_encounters,encounter_count >= 0" json:"encounter_count"`
	FirstSeenAt    time.Time   `gorm:"not null;autoCreateTime" json:"first_seen_at"`
	LastSeenAt     time.Time   `gorm:"not null" json:"last_seen_at"`
	UpdatedAt      time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// 関連 (Preload用)。親を削除するとカードもカスケード削除される
	Flashcards []Flashcard `gorm:"foreignKey:VocabID;references:VocabID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Vocabulary) TableName() string {
	return "vocabulary"
}

// 語彙登録（初出または再遭遇）リクエストDTO
type RegisterVocabularyRequest struct {
	Word         string  `json:"word" validate:"required,min=1"`
	Reading      string  `json:"reading" validate:"required,min=1"`
	Romaji       *string `json:"romaji,omitempty" validate:"omitempty,min=1"`
	Meaning      string  `json:"meaning" validate:"required,min=1"`
	PartOfSpeech *string `json:"part_of_speech,omitempty" validate:"omitempty,min=1"`
	JLPTLevel    *string `json:"jlpt_level,omitempty" validate:"omitempty,oneof=N1 N2 N3 N4 N5"`
}

// ステータス更新リクエストDTO
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// 語彙統計レスポンスDTO（5バケットは常に全て含める）
type VocabularyStatistics struct {
	TotalWords      int64 `json:"total_words"`
	NewWords        int64 `json:"new_words"`
	LearningWords   int64 `json:"learning_words"`
	ReviewingWords  int64 `json:"reviewing_words"`
	MasteredWords   int64 `json:"mastered_words"`
	SuspendedWords  int64 `json:"suspended_words"`
	TotalEncounters int64 `json:"total_encounters"`
}
