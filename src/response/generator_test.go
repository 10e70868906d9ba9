package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorValidatesDefaultTable(t *testing.T) {
	g, err := NewGenerator("en")
	require.NoError(t, err)
	assert.NotNil(t, g)

	_, err = NewGenerator("xx")
	assert.Error(t, err)

	// Sparse tables cannot anchor the fallback chain.
	_, err = NewGenerator("si")
	assert.Error(t, err)
}

func TestGenerateLocalizedPhrase(t *testing.T) {
	g, err := NewGenerator("en")
	require.NoError(t, err)

	assert.Equal(t, phraseTables["en"][keyGreeting], g.Generate("greeting", "en"))
	assert.Equal(t, phraseTables["hi"][keyGreeting], g.Generate("greeting", "hi"))
	assert.Equal(t, phraseTables["ru"][keyBookingHelp], g.Generate("room_booking", "ru"))
}

func TestGenerateUnknownIntentGreets(t *testing.T) {
	g, err := NewGenerator("en")
	require.NoError(t, err)

	assert.Equal(t, phraseTables["en"][keyGreeting], g.Generate("no_such_intent", "en"))
	assert.Equal(t, phraseTables["en"][keyGreeting], g.Generate("farewell", "en"))
}

func TestGenerateUnknownLanguageUsesDefault(t *testing.T) {
	g, err := NewGenerator("en")
	require.NoError(t, err)

	assert.Equal(t, phraseTables["en"][keyGreeting], g.Generate("greeting", "zz"))
}

func TestGenerateSparseLanguageFallsBack(t *testing.T) {
	g, err := NewGenerator("en")
	require.NoError(t, err)

	// Latvian has no breakfast phrase; the amenities fallback covers it.
	assert.Equal(t, phraseTables["lv"][keyAmenities], g.Generate("breakfast", "lv"))

	// Sinhala has no early_checkin phrase; its check_in fallback covers it.
	assert.Equal(t, phraseTables["si"][keyCheckIn], g.Generate("early_checkin", "si"))
}

func TestGeneratePriceInquiryJoinsTiers(t *testing.T) {
	g, err := NewGenerator("en")
	require.NoError(t, err)

	reply := g.Generate("price_inquiry", "en")
	lines := strings.Split(reply, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, phraseTables["en"][keyPriceStandard], lines[0])
	assert.Equal(t, phraseTables["en"][keyPriceDeluxe], lines[1])
	assert.Equal(t, phraseTables["en"][keyPriceSuite], lines[2])
}

func TestGeneratePriceInquiryWithoutPricesShowsOverview(t *testing.T) {
	g, err := NewGenerator("en")
	require.NoError(t, err)

	// Spanish carries no per-tier price phrases.
	assert.Equal(t, phraseTables["es"][keyRoomTypes], g.Generate("price_inquiry", "es"))
}
