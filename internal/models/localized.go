package models

import "strings"

// LocalizedText is a bilingual Tamil/English text pair.
// Embedded into models with a gorm column prefix per field.
type LocalizedText struct {
	TA string `gorm:"type:varchar(500)" json:"ta"`
	EN string `gorm:"type:varchar(500)" json:"en"`
}

// In returns the text for the given locale, falling back to English.
func (t LocalizedText) In(locale string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(locale)), "ta") && t.TA != "" {
		return t.TA
	}
	if t.EN != "" {
		return t.EN
	}
	return t.TA
}

// IsEmpty reports whether both variants are blank.
func (t LocalizedText) IsEmpty() bool {
	return strings.TrimSpace(t.TA) == "" && strings.TrimSpace(t.EN) == ""
}
