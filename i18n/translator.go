package i18n

import "strings"

// Translator retrieves localized messages for message keys.
// data provides optional values substituted for {name} placeholders (for
// example "value" or "pattern").
type Translator interface {
	Message(key string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(key string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		msg = ja[key]
	default:
		msg = en[key]
	}
	if msg == "" {
		msg = en[key]
	}
	if msg == "" {
		return key
	}
	return expand(msg, data)
}

var en = map[string]string{
	"invalid_type":     "invalid type",
	"hint_string":      `Invalid non-string-encoded string value "{value}".`,
	"hint_boolean":     `Invalid non-boolean-encoded boolean value "{value}".`,
	"hint_empty":       `Invalid non-empty-encoded empty value "{value}".`,
	"hint_number":      `Invalid non-number-encoded {type} value "{value}".`,
	"hint_num64":       `Invalid non-num64-encoded {type} value "{value}".`,
	"length":           `Unsatisfied length - string "{value}" length is not allowed.`,
	"pattern":          `Unsatisfied pattern - "{value}" does not conform to "{pattern}".`,
	"pattern_inverted": `Unsatisfied pattern - "{value}" does not conform to inverted "{pattern}".`,
	"invalid_format":   `Invalid {type} value "{value}" (unexpected character at offset {offset}).`,
	"lyb_size":         "Invalid LYB {type} value size {size} (expected at least {min}).",
	"lyb_char":         "Invalid LYB {type} character '{char}' (expected a digit).",
	"out_of_memory":    "Memory allocation failed.",
	"system":           "System function call failed ({cause}).",
	"not_found":        `No plugin registered for type "{type}".`,
	"duplicate_plugin": `Plugin for type "{type}" is already registered.`,
	"payload_type":     `Value of type "{type}" holds an unexpected payload.`,
}

var ja = map[string]string{
	"invalid_type":     "型が不正です",
	"hint_string":      `文字列としてエンコードされていない文字列値 "{value}" です。`,
	"hint_boolean":     `真偽値としてエンコードされていない真偽値 "{value}" です。`,
	"hint_empty":       `empty としてエンコードされていない値 "{value}" です。`,
	"hint_number":      `数値としてエンコードされていない {type} 値 "{value}" です。`,
	"hint_num64":       `64ビット数値としてエンコードされていない {type} 値 "{value}" です。`,
	"length":           `長さ制約を満たしていません - 文字列 "{value}" の長さは許可されていません。`,
	"pattern":          `パターン制約を満たしていません - "{value}" は "{pattern}" に適合しません。`,
	"pattern_inverted": `パターン制約を満たしていません - "{value}" は反転パターン "{pattern}" に適合しません。`,
	"invalid_format":   `不正な {type} 値 "{value}" です（オフセット {offset} に予期しない文字）。`,
	"lyb_size":         "不正な LYB {type} 値のサイズ {size} です（{min} 以上が必要）。",
	"lyb_char":         "不正な LYB {type} 文字 '{char}' です（数字が必要）。",
	"out_of_memory":    "メモリ確保に失敗しました。",
	"system":           "システム関数の呼び出しに失敗しました（{cause}）。",
	"not_found":        `型 "{type}" のプラグインが登録されていません。`,
	"duplicate_plugin": `型 "{type}" のプラグインは既に登録されています。`,
	"payload_type":     `型 "{type}" の値が予期しないペイロードを保持しています。`,
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given key using the current Translator.
func T(key string, data map[string]string) string { return currentTranslator.Message(key, data) }
