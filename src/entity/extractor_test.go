package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk_nlu/src/model"
)

func newTestExtractor() *Extractor {
	e := NewExtractor(model.EntityConfig{DefaultRegion: "IN"})
	// Pin the clock so relative dates are deterministic.
	e.now = func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func TestExtractPhone(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("My phone number is 9876543210", "en")

	phone, ok := entities[model.SlotPhoneNumber].(string)
	require.True(t, ok)
	assert.Contains(t, phone, "9876543210")
}

func TestExtractEmail(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("Reach me at John.Doe@Example.COM please", "en")

	assert.Equal(t, "john.doe@example.com", entities[model.SlotEmail])
}

func TestExtractRelativeDates(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		text string
		want string
	}{
		{"book for today", "2026-03-10"},
		{"book for tomorrow", "2026-03-11"},
		{"book for the day after tomorrow", "2026-03-12"},
		{"book for next week", "2026-03-17"},
	}

	for _, tt := range tests {
		entities := e.Extract(tt.text, "en")
		assert.Equal(t, tt.want, entities[model.SlotCheckInDate], "text: %s", tt.text)
	}
}

func TestExtractNumericDate(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("book on 25/12/2026", "en")

	assert.Equal(t, "2026-12-25", entities[model.SlotCheckInDate])
}

func TestDateSlotFollowsTaskKeyword(t *testing.T) {
	e := newTestExtractor()

	dining := e.Extract("dinner tomorrow", "en")
	assert.Equal(t, "2026-03-11", dining[model.SlotReservationDate])
	assert.NotContains(t, dining, model.SlotCheckInDate)

	event := e.Extract("party tomorrow", "en")
	assert.Equal(t, "2026-03-11", event[model.SlotEventDate])

	// No task keyword means the date stays unassigned.
	bare := e.Extract("tomorrow", "en")
	assert.NotContains(t, bare, model.SlotCheckInDate)
	assert.NotContains(t, bare, model.SlotReservationDate)
	assert.NotContains(t, bare, model.SlotEventDate)
}

func TestExtractGuestCount(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("a table for 4 people", "en")

	assert.Equal(t, 4, entities[model.SlotGuestCount])
}

func TestExtractGuestCountStandaloneNumber(t *testing.T) {
	e := newTestExtractor()

	// A bare number only counts when a guest word appears in the text.
	entities := e.Extract("guests: 6", "en")
	assert.Equal(t, 6, entities[model.SlotGuestCount])

	none := e.Extract("gate 6", "en")
	assert.NotContains(t, none, model.SlotGuestCount)
}

func TestExtractRoomType(t *testing.T) {
	e := newTestExtractor()

	assert.Equal(t, "deluxe", e.Extract("a deluxe please", "en")[model.SlotRoomType])
	assert.Equal(t, "suite", e.Extract("the executive option", "en")[model.SlotRoomType])
}

func TestExtractName(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("My name is Arjun Mehta", "en")

	assert.Equal(t, "Arjun Mehta", entities[model.SlotGuestName])
	assert.Equal(t, "Arjun Mehta", entities[model.SlotOrganizerName])
}

func TestExtractNameRejectsStopWords(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("i am Hello", "en")

	assert.NotContains(t, entities, model.SlotGuestName)
}

func TestExtractMealAndHall(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("a grand hall with dinner", "en")

	assert.Equal(t, "dinner", entities[model.SlotMealType])
	assert.Equal(t, "large", entities[model.SlotHallType])
}

func TestExtractDuration(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("we need it for 5 hours", "en")

	assert.Equal(t, 5, entities[model.SlotDuration])
}

func TestExtractCombinedBookingPhrase(t *testing.T) {
	e := newTestExtractor()

	entities := e.Extract("book for 3 people tomorrow", "en")

	assert.Equal(t, 3, entities[model.SlotGuestCount])
	assert.Equal(t, "2026-03-11", entities[model.SlotCheckInDate])
}

func TestExtractIsDeterministic(t *testing.T) {
	e := newTestExtractor()
	text := "My name is Arjun Mehta, table for 4 people, dinner tomorrow"

	first := e.Extract(text, "en")
	second := e.Extract(text, "en")

	assert.Equal(t, first, second)
}
