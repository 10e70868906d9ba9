package response

import (
	"fmt"
	"strings"
)

// phraseRef points an intent at its phrase key plus the key used when a
// language's table lacks a translation for the primary key.
type phraseRef struct {
	key      string
	fallback string
}

// intentPhrases is the closed intent → phrase mapping. Intents absent here
// (farewell, anything unknown) resolve to the greeting phrase.
var intentPhrases = map[string]phraseRef{
	"greeting":             {keyGreeting, keyGreeting},
	"room_inquiry":         {keyRoomTypes, keyRoomTypes},
	"room_availability":    {keyRoomAvailability, keyBookingHelp},
	"amenities":            {keyAmenities, keyAmenities},
	"check_in_out":         {keyCheckIn, keyCheckIn},
	"booking":              {keyBookingHelp, keyBookingHelp},
	"room_booking":         {keyBookingHelp, keyBookingHelp},
	"cancellation":         {keyCancellation, keyCancellation},
	"modify_booking":       {keyModifyBooking, keyBookingHelp},
	"booking_modification": {keyModifyBooking, keyBookingHelp},
	"breakfast":            {keyBreakfast, keyAmenities},
	"pets":                 {keyPets, keyAmenities},
	"parking":              {keyParking, keyAmenities},
	"wifi":                 {keyWifi, keyAmenities},
	"payment":              {keyPaymentOptions, keyBookingHelp},
	"extra_bed":            {keyExtraBed, keyBookingHelp},
	"child_policy":         {keyChildPolicy, keyBookingHelp},
	"early_checkin":        {keyEarlyCheckin, keyCheckIn},
	"late_checkout":        {keyLateCheckout, keyCheckIn},
	"group_booking":        {keyGroupBooking, keyBookingHelp},
	"long_stay":            {keyLongStay, keyBookingHelp},
	"room_features":        {keyRoomFeatures, keyRoomTypes},
	"location":             {keyAttractions, keyGreeting},
	"airport_transfer":     {keyAirportTransfer, keyAmenities},
	"special_occasion":     {keySpecialOccasion, keyBookingHelp},
	"conference_rooms":     {keyConferenceRooms, keyBookingHelp},
	"complaint":            {keyComplaint, keyGreeting},
	"discount":             {keyLoyaltyProgram, keyBookingHelp},
	"general_inquiry":      {keyGreeting, keyGreeting},
	"dining_reservation":   {keyBreakfast, keyBookingHelp},
	"event_booking":        {keyConferenceRooms, keyBookingHelp},
	"information_request":  {keyAmenities, keyGreeting},
}

// priceInquiryIntent concatenates the three tier-price phrases instead of a
// single key.
const priceInquiryIntent = "price_inquiry"

// Generator selects a localized reply for (intent, language). Lookups never
// fail: a missing language falls back to the default language's table and a
// missing phrase walks the documented fallback chain ending at the greeting.
type Generator struct {
	tables      map[string]map[string]string
	defaultLang string
}

// NewGenerator builds a generator and validates at startup that the default
// language's table can terminate every fallback chain.
func NewGenerator(defaultLang string) (*Generator, error) {
	defaults, ok := phraseTables[defaultLang]
	if !ok {
		return nil, fmt.Errorf("no phrase table for default language %q", defaultLang)
	}

	for intent, ref := range intentPhrases {
		if defaults[ref.key] == "" {
			return nil, fmt.Errorf("default phrase table missing key %q for intent %q", ref.key, intent)
		}
		if defaults[ref.fallback] == "" {
			return nil, fmt.Errorf("default phrase table missing fallback key %q for intent %q", ref.fallback, intent)
		}
	}
	for _, key := range []string{keyPriceStandard, keyPriceDeluxe, keyPriceSuite, keyGreeting} {
		if defaults[key] == "" {
			return nil, fmt.Errorf("default phrase table missing key %q", key)
		}
	}

	return &Generator{tables: phraseTables, defaultLang: defaultLang}, nil
}

// Generate returns the reply text for intent in language.
func (g *Generator) Generate(intent, language string) string {
	table, ok := g.tables[language]
	if !ok {
		table = g.tables[g.defaultLang]
	}

	if intent == priceInquiryIntent {
		return g.priceSummary(table)
	}

	ref, ok := intentPhrases[intent]
	if !ok {
		ref = phraseRef{keyGreeting, keyGreeting}
	}

	for _, key := range []string{ref.key, ref.fallback} {
		if phrase := table[key]; phrase != "" {
			return phrase
		}
	}
	// Sparse language table: finish the chain on the default table, which
	// startup validation guarantees is complete.
	defaults := g.tables[g.defaultLang]
	for _, key := range []string{ref.key, ref.fallback} {
		if phrase := defaults[key]; phrase != "" {
			return phrase
		}
	}
	return defaults[keyGreeting]
}

// priceSummary joins the per-tier price phrases, falling back to the room
// overview when a language has no price phrases at all.
func (g *Generator) priceSummary(table map[string]string) string {
	var lines []string
	for _, key := range []string{keyPriceStandard, keyPriceDeluxe, keyPriceSuite} {
		if phrase := table[key]; phrase != "" {
			lines = append(lines, phrase)
		}
	}
	if len(lines) == 0 {
		if overview := table[keyRoomTypes]; overview != "" {
			return overview
		}
		return g.tables[g.defaultLang][keyRoomTypes]
	}
	return strings.Join(lines, "\n")
}
