// internal/model/screenshot.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Screenshot はOCR連携元から渡されるスクリーンショットを表します。
// checksum のユニークインデックスが冪等な重複検出の要。
// アプリ層のlookupだけではレースに弱いため、必ずインデックスで守る。
type Screenshot struct {
	ScreenshotID uint      `gorm:"primaryKey;autoIncrement" json:"screenshot_id"`
	PublicID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"public_id"`
	Checksum     string    `gorm:"not null;uniqueIndex:uq_screenshots_checksum" json:"checksum"`
	ImageBase64  string    `gorm:"not null" json:"-"` // ペイロードはレスポンスに含めない
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// OCRで抽出されたテキスト断片 (Preload用)
	Segments []ScreenshotSegment `gorm:"foreignKey:ScreenshotID;references:ScreenshotID;constraint:OnDelete:CASCADE" json:"segments"`
}

func (Screenshot) TableName() string {
	return "screenshots"
}

// ScreenshotSegment はOCR済みテキストの1断片です
type ScreenshotSegment struct {
	SegmentID    uint   `gorm:"primaryKey;autoIncrement" json:"segment_id"`
	ScreenshotID uint   `gorm:"not null;index" json:"screenshot_id"`
	Text         string `gorm:"not null" json:"text"`
	Position     int    `gorm:"not null;default:0" json:"position"`
}

func (ScreenshotSegment) TableName() string {
	return "screenshot_segments"
}

// スクリーンショット送信リクエストDTO。
// OCRはこのサブシステムの外側で実行済みの前提で、断片を受け取るだけ
type SubmitScreenshotRequest struct {
	ImageBase64 string   `json:"image_base64" validate:"required,min=1"`
	Segments    []string `json:"segments,omitempty"`
}

// スクリーンショット送信レスポンスDTO
type ScreenshotResponse struct {
	Success      bool      `json:"success"`
	ScreenshotID uint      `json:"screenshot_id"`
	PublicID     uuid.UUID `json:"public_id"`
	Checksum     string    `json:"checksum"`
	Duplicate    bool      `json:"duplicate"` // 既存行にショートサーキットした場合true
}
