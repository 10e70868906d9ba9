package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"hoteldesk_nlu/src/logger"
	"hoteldesk_nlu/src/model"
)

// marker binds a language code to high-signal words for it. The table is
// ordered; the first language with a matching word wins.
type marker struct {
	code  string
	words []string
}

var markerTable = []marker{
	{"lv", []string{"laipni", "jums", "palīdzēt", "viesnīca"}},
	{"ru", []string{"привет", "помощь", "отель", "номер"}},
	{"hi", []string{"नमस्ते", "धन्यवाद", "कमरा", "बुकिंग", "होटल", "मदद"}},
	{"ta", []string{"வணக்கம்", "நன்றி", "அறை", "பதிவு"}},
	{"te", []string{"నమస్కారం", "ధన్యవాదాలు", "గది", "బుకింగ్"}},
	{"kn", []string{"ನಮಸ್ಕಾರ", "ಧನ್ಯವಾದ", "ಕೋಣೆ", "ಬುಕಿಂಗ್"}},
	{"si", []string{"හෝටලය", "කාමරය", "සහාය"}},
	{"fr", []string{"bonjour", "hôtel", "chambre", "aide"}},
	{"it", []string{"ciao", "camera", "aiuto"}},
	{"de", []string{"zimmer", "hilfe", "hallo"}},
	{"es", []string{"hola", "habitación", "ayuda"}},
}

// scriptRanges maps Unicode blocks to script-only languages. Any single
// character inside a block selects the language.
var scriptRanges = []struct {
	code   string
	lo, hi rune
}{
	{"hi", 0x0900, 0x097F}, // Devanagari
	{"ta", 0x0B80, 0x0BFF}, // Tamil
	{"te", 0x0C00, 0x0C7F}, // Telugu
	{"kn", 0x0C80, 0x0CFF}, // Kannada
	{"si", 0x0D80, 0x0DFF}, // Sinhala
	{"ru", 0x0400, 0x04FF}, // Cyrillic
}

// linguaByCode maps supported language codes onto lingua's closed language
// set. Codes missing here (kn, si) are covered by the script tier.
var linguaByCode = map[string]lingua.Language{
	"en": lingua.English,
	"hi": lingua.Hindi,
	"ta": lingua.Tamil,
	"te": lingua.Telugu,
	"lv": lingua.Latvian,
	"ru": lingua.Russian,
	"fr": lingua.French,
	"it": lingua.Italian,
	"de": lingua.German,
	"es": lingua.Spanish,
}

// Detector maps raw text to a language code from the configured supported
// set. Detect never fails; undetectable input maps to the default code.
type Detector struct {
	defaultCode string
	supported   map[string]bool
	statistical lingua.LanguageDetector
	hasModel    bool
}

// NewDetector builds a detector for the configured language set.
func NewDetector(config model.LanguageConfig) *Detector {
	d := &Detector{
		defaultCode: config.DefaultLanguage,
		supported:   make(map[string]bool, len(config.SupportedLanguages)),
	}

	languages := make([]lingua.Language, 0, len(config.SupportedLanguages))
	for _, code := range config.SupportedLanguages {
		d.supported[code] = true
		if lang, ok := linguaByCode[code]; ok {
			languages = append(languages, lang)
		}
	}

	// lingua needs at least two candidate languages to discriminate between.
	if len(languages) >= 2 {
		d.statistical = lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build()
		d.hasModel = true
	}

	return d
}

// Detect returns the language code for text. Tiers, first match wins:
// marker words, Unicode script blocks, statistical model.
func (d *Detector) Detect(text string) string {
	if len(strings.TrimSpace(text)) < 2 {
		return d.defaultCode
	}

	lower := strings.ToLower(text)
	for _, m := range markerTable {
		if !d.supported[m.code] {
			continue
		}
		for _, word := range m.words {
			if strings.Contains(lower, word) {
				logger.Debug().Str("language", m.code).Msg("marker word match")
				return m.code
			}
		}
	}

	for _, sr := range scriptRanges {
		if !d.supported[sr.code] {
			continue
		}
		for _, r := range text {
			if r >= sr.lo && r <= sr.hi {
				logger.Debug().Str("language", sr.code).Msg("script block match")
				return sr.code
			}
		}
	}

	if d.hasModel {
		if lang, ok := d.statistical.DetectLanguageOf(text); ok {
			code := strings.ToLower(lang.IsoCode639_1().String())
			if d.supported[code] {
				logger.Debug().Str("language", code).Msg("statistical match")
				return code
			}
			logger.Debug().Str("language", code).Msg("detected unsupported language, using default")
		}
	}

	return d.defaultCode
}

// IsSupported reports whether code belongs to the configured language set.
func (d *Detector) IsSupported(code string) bool {
	return d.supported[code]
}

// DefaultCode returns the configured default language code.
func (d *Detector) DefaultCode() string {
	return d.defaultCode
}
