// Package i18n resolves the request language used to format figure values.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Portuguese,
}

var matcher = language.NewMatcher(supported)

// Default returns the fallback language tag.
func Default() language.Tag {
	return supported[0]
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag matches value against the supported tags.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	return match(tag)
}

func match(tags ...language.Tag) (language.Tag, bool) {
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default(), false
	}
	return supported[idx], true
}

// ResolveTag picks the request language from the lang query parameter,
// then Accept-Language, then the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if tag, ok := match(tags...); ok {
				return tag
			}
		}
	}
	return Default()
}

// Printer returns a message printer for the request language.
func Printer(r *http.Request) *message.Printer {
	return message.NewPrinter(ResolveTag(r))
}
