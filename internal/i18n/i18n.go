package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locales
const (
	LocaleEN = "en"
	LocaleTA = "ta"
)

// DefaultLocale is used when no locale can be resolved.
const DefaultLocale = LocaleEN

// Normalize maps a raw locale tag to a supported locale.
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(l, "ta"):
		return LocaleTA
	case strings.HasPrefix(l, "en"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// ResolveLocale picks the request locale: lang query first, then Accept-Language.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return Normalize(lang)
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		normalized := Normalize(tag)
		if strings.HasPrefix(strings.ToLower(tag), normalized) {
			return normalized
		}
	}
	return DefaultLocale
}

// T returns the message for key in the given locale.
// Falls back to English, then to the key itself.
func T(locale, key string) string {
	normalized := Normalize(locale)
	if table, ok := messages[normalized]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if normalized != LocaleEN {
		if msg, ok := messages[LocaleEN][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf formats the localized message for key with args.
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
