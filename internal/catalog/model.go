package catalog

import "time"

// RevelationType classifies where a surah was revealed.
type RevelationType string

const (
	// RevelationMeccan marks surahs revealed in Mecca.
	RevelationMeccan RevelationType = "Meccan"
	// RevelationMedinan marks surahs revealed in Medina.
	RevelationMedinan RevelationType = "Medinan"
)

const (
	// MinSurahNumber is the first surah in the catalog.
	MinSurahNumber = 1
	// MaxSurahNumber is the last surah in the catalog.
	MaxSurahNumber = 114
)

// Surah is an immutable catalog entry.
type Surah struct {
	ID                     uint           `gorm:"column:id;primaryKey" json:"id"`
	Number                 int            `gorm:"column:number;uniqueIndex;not null" json:"number"`
	Name                   string         `gorm:"column:name;size:64;not null" json:"name"`
	EnglishName            string         `gorm:"column:english_name;size:64;not null" json:"englishName"`
	EnglishNameTranslation string         `gorm:"column:english_name_translation;size:128;not null" json:"englishNameTranslation"`
	RevelationType         RevelationType `gorm:"column:revelation_type;size:16;not null" json:"revelationType"`
	NumberOfAyahs          int            `gorm:"column:number_of_ayahs;not null" json:"numberOfAyahs"`
}

// TableName provides the explicit table binding for GORM.
func (Surah) TableName() string {
	return "surahs"
}

// Ayah is a verse belonging to exactly one surah.
type Ayah struct {
	ID              uint    `gorm:"column:id;primaryKey" json:"id"`
	SurahID         uint    `gorm:"column:surah_id;not null;uniqueIndex:idx_ayahs_surah_number,priority:1" json:"surahId"`
	Number          int     `gorm:"column:number;not null;uniqueIndex:idx_ayahs_surah_number,priority:2" json:"number"`
	Text            string  `gorm:"column:text;type:text;not null" json:"text"`
	TextIndopak     *string `gorm:"column:text_indopak;type:text" json:"textIndopak,omitempty"`
	Transliteration *string `gorm:"column:transliteration;type:text" json:"transliteration,omitempty"`
	Translation     string  `gorm:"column:translation;type:text;not null" json:"translation"`
	Juz             int     `gorm:"column:juz;not null" json:"juz"`
	Page            int     `gorm:"column:page;not null" json:"page"`
}

// TableName provides the explicit table binding for GORM.
func (Ayah) TableName() string {
	return "ayahs"
}

// Recitation is an official recording attached to a surah.
type Recitation struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	SurahID      uint      `gorm:"column:surah_id;not null;index" json:"surahId"`
	ReciterName  string    `gorm:"column:reciter_name;size:128;not null" json:"reciterName"`
	ReciterID    *string   `gorm:"column:reciter_id;size:64" json:"reciterId,omitempty"`
	AudioURL     string    `gorm:"column:audio_url;size:512;not null" json:"audioUrl"`
	Format       string    `gorm:"column:format;size:16;not null;default:'mp3'" json:"format"`
	IsOfficial   bool      `gorm:"column:is_official;not null;default:true" json:"isOfficial"`
	IsUserUpload bool      `gorm:"column:is_user_upload;not null;default:false" json:"isUserUpload"`
	FileSize     *int64    `gorm:"column:file_size" json:"fileSize,omitempty"`
	Duration     *int      `gorm:"column:duration" json:"duration,omitempty"`
	Description  *string   `gorm:"column:description;size:500" json:"description,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName provides the explicit table binding for GORM.
func (Recitation) TableName() string {
	return "recitations"
}

// SurahDetail is a surah with its ordered verses and official recitations.
type SurahDetail struct {
	Surah
	Ayahs       []Ayah       `json:"ayahs"`
	Recitations []Recitation `json:"recitations"`
}

// Models lists the catalog tables for schema migration.
func Models() []interface{} {
	return []interface{}{&Surah{}, &Ayah{}, &Recitation{}}
}
