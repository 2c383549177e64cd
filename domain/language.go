package domain

import (
	"strconv"
	"strings"
)

// Language is a supported display language code
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"

	DefaultLanguage = LanguageEnglish
)

// SupportedLanguages lists every language content can be resolved to
var SupportedLanguages = []Language{LanguageEnglish, LanguageArabic}

// IsSupportedLanguage reports whether code names a supported language.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if string(l) == code {
			return true
		}
	}
	return false
}

// ResolveLanguage picks the request language: an explicit supported parameter wins,
// then the best Accept-Language entry, then DefaultLanguage.
func ResolveLanguage(param, acceptLanguage string) Language {
	if IsSupportedLanguage(param) {
		return Language(param)
	}
	if acceptLanguage != "" {
		return ParseAcceptLanguage(acceptLanguage)
	}
	return DefaultLanguage
}

// ParseAcceptLanguage returns the highest weighted supported language in an
// Accept-Language header. Ties keep the first listed entry. Malformed entries are
// skipped; an unusable header yields DefaultLanguage.
func ParseAcceptLanguage(header string) Language {
	best := DefaultLanguage
	bestQ := -1.0

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, _ := strings.Cut(part, ";")
		primary, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
		code := strings.ToLower(primary)
		if !IsSupportedLanguage(code) {
			continue
		}

		q, ok := parseQuality(params)
		if !ok || q <= 0 {
			continue
		}
		if q > bestQ {
			best, bestQ = Language(code), q
		}
	}

	return best
}

// parseQuality extracts the q weight from the parameter section of a header entry.
func parseQuality(params string) (float64, bool) {
	if strings.TrimSpace(params) == "" {
		return 1.0, true
	}
	for _, p := range strings.Split(params, ";") {
		key, val, found := strings.Cut(strings.TrimSpace(p), "=")
		if !found || strings.TrimSpace(key) != "q" {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || q > 1 {
			return 0, false
		}
		return q, true
	}
	return 1.0, true
}

// LocalizedText holds one value per language for a multilingual attribute
type LocalizedText map[Language]string

// NewLocalizedText builds a LocalizedText from the English and Arabic values.
func NewLocalizedText(en, ar string) LocalizedText {
	t := LocalizedText{}
	if en != "" {
		t[LanguageEnglish] = en
	}
	if ar != "" {
		t[LanguageArabic] = ar
	}
	return t
}

// Get returns the raw value stored for lang without fallback.
func (t LocalizedText) Get(lang Language) string {
	if t == nil {
		return ""
	}
	return t[lang]
}

// Resolve returns the value for lang, falling back to DefaultLanguage when the
// localized value is empty. Nil means neither is present.
func (t LocalizedText) Resolve(lang Language) *string {
	if v := t.Get(lang); v != "" {
		return &v
	}
	if v := t.Get(DefaultLanguage); v != "" {
		return &v
	}
	return nil
}

// String resolves lang and returns an empty string when nothing is present.
func (t LocalizedText) String(lang Language) string {
	if v := t.Resolve(lang); v != nil {
		return *v
	}
	return ""
}
