package ui

import "testing"

func TestLocalizationLanguages(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("default language = %q, want en", l.GetCurrentLanguage())
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyDownload); got != "Скачать" {
		t.Errorf("ru download = %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("language = %q, want ru", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system language = %q, want en", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("missing key = %q, want key itself", got)
	}

	delete(l.texts["pt"], KeyStop)
	if got := l.GetText(KeyStop); got != "Stop" {
		t.Errorf("fallback = %q, want English text", got)
	}
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts := l.texts[lang]
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("language %s is missing %s", lang, key)
			}
		}
	}
}
