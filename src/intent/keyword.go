package intent

import (
	"context"
	"strings"

	"hoteldesk_nlu/src/model"
)

// keywordEntry binds an intent to its keyword list. The slice preserves
// enumeration order: when two intents reach the same match count, the one
// that reached it first keeps priority.
type keywordEntry struct {
	intent   string
	keywords []string
}

var keywordTable = []keywordEntry{
	{"greeting", []string{"hello", "hi", "hey", "good morning", "good evening", "greetings", "привет", "हैलो", "hola", "bonjour"}},
	{"room_inquiry", []string{"room", "rooms", "room types", "what rooms", "types of rooms", "room categories", "номер", "कमरा", "habitación"}},
	{"price_inquiry", []string{"price", "cost", "how much", "rate", "pricing", "charges", "tariff", "fees", "цена", "कीमत", "precio"}},
	{"room_availability", []string{"available", "availability", "vacant", "free rooms", "check availability", "any rooms", "доступность"}},
	{"amenities", []string{"amenities", "facilities", "services", "features", "what do you have", "what's included", "удобства", "सुविधाएं"}},
	{"check_in_out", []string{"check in", "check out", "timing", "time", "what time", "when can i", "заезд", "выезд"}},
	{"booking", []string{"book", "reserve", "reservation", "i want to book", "make a booking", "бронировать", "बुक"}},
	{"cancellation", []string{"cancel", "cancellation policy", "cancel booking", "refund", "отмена", "रद्द"}},
	{"modify_booking", []string{"change", "modify", "reschedule", "update booking", "change dates", "edit booking", "изменить"}},
	{"breakfast", []string{"breakfast", "food", "dining", "meal", "завтрак", "नाश्ता"}},
	{"pets", []string{"pet", "dog", "cat", "animal", "bring pet", "питомец", "पालतू"}},
	{"parking", []string{"parking", "park", "car", "vehicle", "парковка", "पार्किंग"}},
	{"wifi", []string{"wifi", "internet", "connection", "интернет", "वाईफाई"}},
	{"payment", []string{"payment", "pay", "how to pay", "payment method", "deposit", "advance", "оплата", "भुगतान"}},
	{"extra_bed", []string{"extra bed", "additional bed", "cot", "rollaway", "дополнительная кровать", "अतिरिक्त बिस्तर"}},
	{"child_policy", []string{"child", "kids", "children", "baby", "infant", "дети", "बच्चे"}},
	{"early_checkin", []string{"early check in", "arrive early", "before 2 pm", "ранний заезд"}},
	{"late_checkout", []string{"late check out", "extend stay", "later checkout", "поздний выезд"}},
	{"group_booking", []string{"group", "multiple rooms", "bulk booking", "5 rooms", "групповое бронирование"}},
	{"long_stay", []string{"long stay", "extended stay", "weekly", "monthly", "многодневное пребывание"}},
	{"room_features", []string{"room features", "what's in the room", "room details", "facilities in room"}},
	{"location", []string{"location", "where", "address", "nearby", "attractions", "местоположение"}},
	{"airport_transfer", []string{"airport", "pickup", "drop", "shuttle", "transfer", "транспорт"}},
	{"special_occasion", []string{"birthday", "anniversary", "honeymoon", "celebration", "special occasion"}},
	{"complaint", []string{"complaint", "problem", "issue", "not happy", "disappointed", "жалоба"}},
	{"discount", []string{"discount", "offer", "deal", "promotion", "coupon", "скидка", "छूट"}},
}

// KeywordClassifier scores every intent by keyword occurrence count and picks
// the intent with the most matches. It is the simplified strategy used when
// no rule/statistical classifier is wired.
type KeywordClassifier struct {
	table []keywordEntry
}

// NewKeywordClassifier builds the keyword-frequency classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{table: keywordTable}
}

// Classify counts keyword hits per intent. Only a strictly greater count
// replaces the current best, so earlier intents win ties. Zero matches yield
// the general-inquiry fallback.
func (c *KeywordClassifier) Classify(ctx context.Context, text, language string) model.IntentResult {
	lower := strings.ToLower(text)

	best := model.IntentResult{
		Intent:     model.IntentGeneralInquiry,
		Confidence: 0.5,
		Method:     model.MethodKeyword,
	}
	maxMatches := 0

	for _, entry := range c.table {
		matches := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best.Intent = entry.intent
			best.Confidence = min(0.95, 0.7+0.1*float64(matches))
		}
	}

	return best
}
