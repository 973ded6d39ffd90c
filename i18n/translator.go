package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message ("label",
// "limit", "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":   "invalid type",
		"required":       "required property missing",
		"unknown_key":    "unknown key",
		"invalid_format": "invalid format",
		"parse_error":    "parse error",
		"truncated":      "truncated",

		"neo4jPoint.base":        `"{{label}}" must be a valid point`,
		"neo4jPoint.coordinates": `"{{label}}" must be a valid coordinates point`,
		"neo4jPoint.cartesian":   `"{{label}}" must be a valid cartesian point`,
		"neo4jPoint.is3d":        `"{{label}}" must be a valid 3D point`,
		"neo4jPoint.is2d":        `"{{label}}" must be a valid 2D point`,
	},
	"ja": {
		"invalid_type":   "型が不正です",
		"required":       "必須プロパティが不足しています",
		"unknown_key":    "未知のキーです",
		"invalid_format": "形式が不正です",
		"parse_error":    "解析エラー",
		"truncated":      "打ち切られました",

		"neo4jPoint.base":        `"{{label}}" は有効なポイントである必要があります`,
		"neo4jPoint.coordinates": `"{{label}}" は有効な座標ポイントである必要があります`,
		"neo4jPoint.cartesian":   `"{{label}}" は有効な直交座標ポイントである必要があります`,
		"neo4jPoint.is3d":        `"{{label}}" は有効な3Dポイントである必要があります`,
		"neo4jPoint.is2d":        `"{{label}}" は有効な2Dポイントである必要があります`,
	},
}

func init() {
	for _, kind := range []string{"Date", "DateTime", "LocalDateTime"} {
		code := "neo4j" + kind
		en, ja := dictionaries["en"], dictionaries["ja"]

		en[code+".base"] = `"{{label}}" must be a valid ` + kind
		en[code+".min"] = `"{{label}}" must be greater than or equal to "{{limit}}"`
		en[code+".max"] = `"{{label}}" must be less than or equal to "{{limit}}"`
		en[code+".less"] = `"{{label}}" must be less than "{{limit}}"`
		en[code+".greater"] = `"{{label}}" must be greater than "{{limit}}"`

		ja[code+".base"] = `"{{label}}" は有効な ` + kind + ` である必要があります`
		ja[code+".min"] = `"{{label}}" は "{{limit}}" 以降である必要があります`
		ja[code+".max"] = `"{{label}}" は "{{limit}}" 以前である必要があります`
		ja[code+".less"] = `"{{label}}" は "{{limit}}" より前である必要があります`
		ja[code+".greater"] = `"{{label}}" は "{{limit}}" より後である必要があります`
	}
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return interpolate(msg, data)
}

// interpolate replaces {{key}} placeholders. Unknown keys render empty, and
// a missing label renders as "value".
func interpolate(msg string, data map[string]string) string {
	if !strings.Contains(msg, "{{") {
		return msg
	}
	var b strings.Builder
	for {
		i := strings.Index(msg, "{{")
		if i < 0 {
			break
		}
		j := strings.Index(msg[i:], "}}")
		if j < 0 {
			break
		}
		key := msg[i+2 : i+j]
		b.WriteString(msg[:i])
		v, ok := data[key]
		if !ok && key == "label" {
			v = "value"
		}
		b.WriteString(v)
		msg = msg[i+j+2:]
	}
	b.WriteString(msg)
	return b.String()
}

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "ja"} }

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
