package domain

import "testing"

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		header   string
		expected Language
	}{
		{name: "query param wins over header", param: "ar", header: "en", expected: LanguageArabic},
		{name: "header weight picks arabic", param: "", header: "fr,ar;q=0.5", expected: LanguageArabic},
		{name: "nothing supplied", expected: LanguageEnglish},
		{name: "unsupported param falls through to header", param: "fr", header: "ar", expected: LanguageArabic},
		{name: "unsupported param without header", param: "de", expected: LanguageEnglish},
		{name: "region subtag stripped", header: "ar-EG", expected: LanguageArabic},
		{name: "higher weight wins", header: "en;q=0.3,ar;q=0.9", expected: LanguageArabic},
		{name: "tie keeps first listed", header: "ar;q=0.8,en;q=0.8", expected: LanguageArabic},
		{name: "uppercase tag", header: "AR", expected: LanguageArabic},
		{name: "malformed weight skipped", header: "ar;q=abc,en;q=0.2", expected: LanguageEnglish},
		{name: "zero weight excluded", header: "ar;q=0", expected: LanguageEnglish},
		{name: "garbage header", header: ";;;,,,=", expected: LanguageEnglish},
		{name: "only unsupported languages", header: "fr-FR,de;q=0.9", expected: LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLanguage(tt.param, tt.header)
			if got != tt.expected {
				t.Errorf("ResolveLanguage(%q, %q) = %q, want %q", tt.param, tt.header, got, tt.expected)
			}
		})
	}
}

func TestLocalizedText_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		text     LocalizedText
		lang     Language
		expected *string
	}{
		{name: "localized value present", text: NewLocalizedText("Hello", "مرحبا"), lang: LanguageArabic, expected: strPtr("مرحبا")},
		{name: "english requested", text: NewLocalizedText("Hello", "مرحبا"), lang: LanguageEnglish, expected: strPtr("Hello")},
		{name: "arabic empty falls back", text: NewLocalizedText("Hello", ""), lang: LanguageArabic, expected: strPtr("Hello")},
		{name: "both empty", text: NewLocalizedText("", ""), lang: LanguageArabic, expected: nil},
		{name: "english missing arabic present", text: NewLocalizedText("", "مرحبا"), lang: LanguageEnglish, expected: nil},
		{name: "nil map", text: nil, lang: LanguageEnglish, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.text.Resolve(tt.lang)
			switch {
			case tt.expected == nil && got != nil:
				t.Errorf("expected nil, got %q", *got)
			case tt.expected != nil && got == nil:
				t.Errorf("expected %q, got nil", *tt.expected)
			case tt.expected != nil && *got != *tt.expected:
				t.Errorf("expected %q, got %q", *tt.expected, *got)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
