package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hoteldesk_nlu/src/model"
)

func TestKeywordSingleMatch(t *testing.T) {
	c := NewKeywordClassifier()

	result := c.Classify(context.Background(), "hello", "en")

	assert.Equal(t, "greeting", result.Intent)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
	assert.Equal(t, model.MethodKeyword, result.Method)
}

func TestKeywordConfidenceScalesWithMatches(t *testing.T) {
	c := NewKeywordClassifier()

	result := c.Classify(context.Background(), "how much does it cost", "en")

	assert.Equal(t, "price_inquiry", result.Intent)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
}

func TestKeywordConfidenceIsCapped(t *testing.T) {
	c := NewKeywordClassifier()

	// Three keyword hits would score 1.0 without the cap.
	result := c.Classify(context.Background(), "price cost rate", "en")

	assert.Equal(t, "price_inquiry", result.Intent)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
}

func TestKeywordTieKeepsEarlierIntent(t *testing.T) {
	c := NewKeywordClassifier()

	// One hit each for greeting and price_inquiry; greeting is enumerated
	// first and a tie never displaces it.
	result := c.Classify(context.Background(), "hello price", "en")

	assert.Equal(t, "greeting", result.Intent)
}

func TestKeywordNoMatchFallsBack(t *testing.T) {
	c := NewKeywordClassifier()

	result := c.Classify(context.Background(), "qwerty", "en")

	assert.Equal(t, model.IntentGeneralInquiry, result.Intent)
	assert.Equal(t, 0.5, result.Confidence)
	assert.Equal(t, model.MethodKeyword, result.Method)
}

func TestKeywordMultilingual(t *testing.T) {
	c := NewKeywordClassifier()

	assert.Equal(t, "greeting", c.Classify(context.Background(), "привет", "ru").Intent)
	assert.Equal(t, "booking", c.Classify(context.Background(), "मैं बुक करना चाहता हूं", "hi").Intent)
	assert.Equal(t, "extra_bed", c.Classify(context.Background(), "нужна дополнительная кровать", "ru").Intent)
	assert.Equal(t, "long_stay", c.Classify(context.Background(), "многодневное пребывание", "ru").Intent)
}
