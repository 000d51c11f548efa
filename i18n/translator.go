package i18n

import (
	"strings"
	"sync/atomic"
)

// Message codes for every built-in validation failure.
const (
	CodeExpectedString   = "expected_string"
	CodeExpectedInteger  = "expected_integer"
	CodeExpectedFloat    = "expected_float"
	CodeExpectedBoolean  = "expected_boolean"
	CodeExpectedNull     = "expected_null"
	CodeExpectedDate     = "expected_date"
	CodeExpectedDateTime = "expected_datetime"
	CodeExpectedArray    = "expected_array"
	CodeExpectedMap      = "expected_map"
	CodeExpectedObject   = "expected_object"
	CodeTupleLength      = "tuple_length"
	CodeKeyMissing       = "key_missing"
	CodeUnknownKeys      = "unknown_keys"
	CodeMinLength        = "min_length"
	CodeMaxLength        = "max_length"
	CodeMinProperties    = "min_properties"
	CodeMaxProperties    = "max_properties"
	CodeMinimum          = "minimum"
	CodeMaximum          = "maximum"
	CodeExclusiveMinimum = "exclusive_minimum"
	CodeExclusiveMaximum = "exclusive_maximum"
	CodeMultipleOf       = "multiple_of"
	CodeNotBlank         = "not_blank"
	CodeEnum             = "enum"
	CodeEmail            = "email"
	CodePattern          = "pattern"
	CodeUniqueItems      = "unique_items"
	CodeInvalidJSON      = "invalid_json"
	CodeDuplicateKey     = "duplicate_key"
	CodeMaxDepth         = "max_depth"
)

// Translator retrieves localized messages for message codes.
// data provides values to embed in the message (for example "n" or "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		CodeExpectedString:   "expected a string",
		CodeExpectedInteger:  "expected an integer",
		CodeExpectedFloat:    "expected a float",
		CodeExpectedBoolean:  "expected a boolean",
		CodeExpectedNull:     "expected null",
		CodeExpectedDate:     "expected date formatted as yyyy-mm-dd",
		CodeExpectedDateTime: "expected date-time formatted as RFC 3339",
		CodeExpectedArray:    "expected an array",
		CodeExpectedMap:      "expected a map",
		CodeExpectedObject:   "expected an object",
		CodeTupleLength:      "expected array of length {n}",
		CodeKeyMissing:       "key missing",
		CodeUnknownKeys:      "Received unknown keys. Only expected {keys}",
		CodeMinLength:        "minimum allowed length is {n}",
		CodeMaxLength:        "maximum allowed length is {n}",
		CodeMinProperties:    "minimum allowed properties is {n}",
		CodeMaxProperties:    "maximum allowed properties is {n}",
		CodeMinimum:          "minimum allowed value is {n}",
		CodeMaximum:          "maximum allowed value is {n}",
		CodeExclusiveMinimum: "value must be greater than {n}",
		CodeExclusiveMaximum: "value must be less than {n}",
		CodeMultipleOf:       "expected multiple of {n}",
		CodeNotBlank:         "cannot be blank",
		CodeEnum:             "expected one of {choices}",
		CodeEmail:            "expected a valid email address",
		CodePattern:          "must match pattern {pattern}",
		CodeUniqueItems:      "all items must be unique",
		CodeInvalidJSON:      "invalid json",
		CodeDuplicateKey:     "duplicate key {key}",
		CodeMaxDepth:         "maximum nesting depth is {n}",
	},
	"ja": {
		CodeExpectedString:   "文字列である必要があります",
		CodeExpectedInteger:  "整数である必要があります",
		CodeExpectedFloat:    "小数である必要があります",
		CodeExpectedBoolean:  "真偽値である必要があります",
		CodeExpectedNull:     "null である必要があります",
		CodeExpectedDate:     "yyyy-mm-dd 形式の日付である必要があります",
		CodeExpectedDateTime: "RFC 3339 形式の日時である必要があります",
		CodeExpectedArray:    "配列である必要があります",
		CodeExpectedMap:      "マップである必要があります",
		CodeExpectedObject:   "オブジェクトである必要があります",
		CodeTupleLength:      "長さ {n} の配列である必要があります",
		CodeKeyMissing:       "必須プロパティが不足しています",
		CodeUnknownKeys:      "未知のキーです。許可されるキーは {keys} です",
		CodeMinLength:        "長さは {n} 以上である必要があります",
		CodeMaxLength:        "長さは {n} 以下である必要があります",
		CodeMinProperties:    "プロパティ数は {n} 以上である必要があります",
		CodeMaxProperties:    "プロパティ数は {n} 以下である必要があります",
		CodeMinimum:          "{n} 以上である必要があります",
		CodeMaximum:          "{n} 以下である必要があります",
		CodeExclusiveMinimum: "{n} より大きい必要があります",
		CodeExclusiveMaximum: "{n} より小さい必要があります",
		CodeMultipleOf:       "{n} の倍数である必要があります",
		CodeNotBlank:         "空白にはできません",
		CodeEnum:             "{choices} のいずれかである必要があります",
		CodeEmail:            "有効なメールアドレスである必要があります",
		CodePattern:          "パターン {pattern} に一致する必要があります",
		CodeUniqueItems:      "要素が重複しています",
		CodeInvalidJSON:      "JSON が不正です",
		CodeDuplicateKey:     "キー {key} が重複しています",
		CodeMaxDepth:         "ネストの深さは {n} までです",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return expand(msg, data)
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// translatorBox gives atomic.Pointer a single concrete type to hold.
type translatorBox struct{ tr Translator }

var currentTranslator atomic.Pointer[translatorBox]

func init() { currentTranslator.Store(&translatorBox{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja"). Safe to
// call while validators run; messages already produced are not rewritten.
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator.Store(&translatorBox{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	currentTranslator.Store(&translatorBox{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Load().tr.Message(code, data)
}
