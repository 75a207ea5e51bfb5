package recitations

import (
	"errors"
	"time"
)

// ErrRecitationNotFound indicates that no user recitation matches the request.
var ErrRecitationNotFound = errors.New("recitations: recitation not found")

// UserRecitation is a user-submitted recording awaiting or past moderation.
type UserRecitation struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	SurahNumber  int       `gorm:"column:surah_number;not null;index" json:"surahNumber"`
	AyahNumber   *int      `gorm:"column:ayah_number" json:"ayahNumber"`
	ReciterName  string    `gorm:"column:reciter_name;size:100;not null" json:"reciterName"`
	AudioURL     string    `gorm:"column:audio_url;size:512;not null;uniqueIndex" json:"audioUrl"`
	FileName     string    `gorm:"column:file_name;size:255;not null" json:"fileName"`
	Description  *string   `gorm:"column:description;size:500" json:"description"`
	FileSize     int64     `gorm:"column:file_size;not null" json:"fileSize"`
	Duration     *int      `gorm:"column:duration" json:"duration"`
	DetectedType string    `gorm:"column:detected_type;size:64;not null;default:''" json:"detectedType"`
	IsApproved   bool      `gorm:"column:is_approved;not null;default:false;index:idx_user_recitations_approved_created,priority:1" json:"isApproved"`
	PlayCount    int64     `gorm:"column:play_count;not null;default:0" json:"playCount"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index:idx_user_recitations_approved_created,priority:2" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName provides the explicit table binding for GORM.
func (UserRecitation) TableName() string {
	return "user_recitations"
}

// NewRecitation describes a validated submission ready to be recorded.
type NewRecitation struct {
	SurahNumber  int
	ReciterName  string
	Description  *string
	AudioURL     string
	FileName     string
	FileSize     int64
	DetectedType string
}
