package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "truncated":
			return "入力が不足しています"
		case "length_mismatch":
			return "長さが一致しません"
		case "too_long":
			return "上限を超えています"
		case "unknown_discriminant":
			return "未知の判別値です"
		case "invalid_value":
			return "値が不正です"
		case "invalid_type":
			return "型が不正です"
		case "invalid_format":
			return "形式が不正です"
		case "range_error":
			return "表現可能な範囲外です"
		case "invalid_encoded_string":
			return "エンコード文字列が不正です"
		case "invalid_checksum":
			return "チェックサムが一致しません"
		case "internal":
			return "内部不変条件に違反しました"
		}
	default: // "en"
		switch code {
		case "truncated":
			return "input exhausted"
		case "length_mismatch":
			return "length mismatch"
		case "too_long":
			return "exceeds declared maximum"
		case "unknown_discriminant":
			return "unknown discriminant"
		case "invalid_value":
			return "invalid value"
		case "invalid_type":
			return "invalid type"
		case "invalid_format":
			return "invalid format"
		case "range_error":
			return "out of representable range"
		case "invalid_encoded_string":
			return "invalid encoded string"
		case "invalid_checksum":
			return "invalid checksum"
		case "internal":
			return "internal invariant violated"
		}
	}
	return code
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

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
