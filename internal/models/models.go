package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentAnalysis stores one completed scoring run. The full result,
// including per-rule outcomes and suggestions, is kept as JSONB so the
// report can be replayed without rescoring.
type ContentAnalysis struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	URL          string         `gorm:"type:varchar(2048);index" json:"url"`
	Title        string         `gorm:"type:varchar(512)" json:"title"`
	FocusKeyword string         `gorm:"type:varchar(255);not null;index" json:"focus_keyword"`
	Score        int            `gorm:"not null;index" json:"score"`
	MaxScore     int            `gorm:"not null" json:"max_score"`
	Rating       string         `gorm:"type:varchar(20);not null;index" json:"rating"`
	WordCount    int            `gorm:"not null" json:"word_count"`
	Result       datatypes.JSON `gorm:"type:jsonb" json:"result"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
