package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaEntry is a storefront media item: a menu image or a reel video.
// Kind separates the two feeds.
type MediaEntry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Kind      string         `gorm:"index;not null" json:"kind"` // menu / reel
	URL       string         `gorm:"type:varchar(500);not null" json:"url"`
	Caption   LocalizedText  `gorm:"embedded;embeddedPrefix:caption_" json:"caption"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (MediaEntry) TableName() string {
	return "media_entries"
}
