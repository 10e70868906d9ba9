package language

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hoteldesk_nlu/src/model"
)

func testConfig() model.LanguageConfig {
	return model.LanguageConfig{
		DefaultLanguage: "en",
		SupportedLanguages: []string{
			"en", "hi", "ta", "te", "kn", "lv", "ru", "si", "fr", "it", "de", "es",
		},
	}
}

func TestDetectMarkerWords(t *testing.T) {
	d := NewDetector(testConfig())

	assert.Equal(t, "hi", d.Detect("नमस्ते, मुझे मदद चाहिए"))
	assert.Equal(t, "ru", d.Detect("привет, есть свободные номера?"))
	assert.Equal(t, "fr", d.Detect("bonjour, je cherche une chambre"))
	assert.Equal(t, "lv", d.Detect("laipni lūdzam"))
}

func TestDetectScriptBlocks(t *testing.T) {
	d := NewDetector(testConfig())

	// No marker words, only the script identifies the language.
	assert.Equal(t, "ta", d.Detect("எனக்கு உதவி தேவை"))
	assert.Equal(t, "si", d.Detect("මට උදව් අවශ්‍යයි"))
}

func TestDetectStatistical(t *testing.T) {
	d := NewDetector(testConfig())

	// English has no marker row; even a single word rides the model tier.
	assert.Equal(t, "en", d.Detect("Hello"))
	assert.Equal(t, "en", d.Detect("I would like to make a reservation for next week"))
}

func TestDetectShortTextUsesDefault(t *testing.T) {
	d := NewDetector(testConfig())

	assert.Equal(t, "en", d.Detect(""))
	assert.Equal(t, "en", d.Detect(" "))
	assert.Equal(t, "en", d.Detect("a"))
}

func TestDetectWithoutModelFallsBackToDefault(t *testing.T) {
	d := NewDetector(model.LanguageConfig{
		DefaultLanguage:    "en",
		SupportedLanguages: []string{"en"},
	})

	// One lingua language means no statistical model is built.
	assert.Equal(t, "en", d.Detect("qwerty asdfgh zxcvbn"))
}

func TestUnsupportedMarkerIsSkipped(t *testing.T) {
	d := NewDetector(model.LanguageConfig{
		DefaultLanguage:    "en",
		SupportedLanguages: []string{"en"},
	})

	// "bonjour" is a French marker but French is not in the configured set.
	assert.Equal(t, "en", d.Detect("bonjour bonjour bonjour"))
}

func TestIsSupported(t *testing.T) {
	d := NewDetector(testConfig())

	assert.True(t, d.IsSupported("hi"))
	assert.False(t, d.IsSupported("ja"))
	assert.Equal(t, "en", d.DefaultCode())
}
