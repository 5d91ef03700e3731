package models

// Setting is a key-value store for singleton configuration blobs.
type Setting struct {
	Key       string `gorm:"primarykey" json:"key"`
	ValueJSON JSON   `gorm:"type:json" json:"value"`
}

// TableName sets the table name.
func (Setting) TableName() string {
	return "settings"
}
