package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("lyb_size", map[string]string{"type": "date-and-time", "size": "7", "min": "8"})
	want := "Invalid LYB date-and-time value size 7 (expected at least 8)."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTranslator_UnknownKey(t *testing.T) {
	if got := T("no_such_key", nil); got != "no_such_key" {
		t.Fatalf("unknown keys should echo, got %q", got)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestSetTranslator(t *testing.T) {
	SetTranslator(fixed("custom"))
	if got := T("length", nil); got != "custom" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("out_of_memory", nil); got != "Memory allocation failed." {
		t.Fatalf("nil translator should restore default, got %q", got)
	}
}
