package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"

	"hoteldesk_nlu/src/model"
)

var (
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\+?\d{1,3}[\s-]?\d{10}\b`),
		regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	}

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`),
		regexp.MustCompile(`\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b`),
	}

	// Ordered from longest expression to shortest so "day after tomorrow"
	// is not swallowed by "tomorrow".
	relativeDates = []struct {
		expr string
		days func(now time.Time) int
	}{
		{"day after tomorrow", func(time.Time) int { return 2 }},
		{"tomorrow", func(time.Time) int { return 1 }},
		{"today", func(time.Time) int { return 0 }},
		{"next week", func(time.Time) int { return 7 }},
		{"next month", func(time.Time) int { return 30 }},
		{"this weekend", func(now time.Time) int {
			return (int(time.Saturday) - int(now.Weekday()) + 7) % 7
		}},
	}

	dateLayouts = []string{"2/1/2006", "2-1-2006", "2006-1-2", "2006/1/2", "1/2/2006"}

	guestCountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:people|persons?|guests?|pax)`),
		regexp.MustCompile(`for\s+(\d+)`),
		regexp.MustCompile(`(\d+)\s*(?:adults?|person)`),
	}

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:(?i:my name is|i am|this is|i'm))\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	}

	durationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*hours?`),
		regexp.MustCompile(`for\s+(\d+)\s*hours?`),
	}

	standaloneNumber = regexp.MustCompile(`\b(\d+)\b`)
	nonDigit         = regexp.MustCompile(`\D`)
)

// roomTypeBuckets is ordered: the first bucket with a keyword hit wins.
var roomTypeBuckets = []struct {
	roomType string
	keywords []string
}{
	{"single", []string{"single", "solo", "one", "1"}},
	{"double", []string{"double", "two", "2", "couple"}},
	{"deluxe", []string{"deluxe", "luxury", "premium"}},
	{"suite", []string{"suite", "executive", "family"}},
}

var mealTypes = []string{"breakfast", "lunch", "dinner"}

var hallBuckets = []struct {
	hallType string
	keywords []string
}{
	{"small", []string{"small", "intimate", "50"}},
	{"medium", []string{"medium", "moderate", "150"}},
	{"large", []string{"large", "big", "grand", "300"}},
}

// notNames are words the name heuristic must reject.
var notNames = map[string]bool{
	"yes": true, "no": true, "thank": true, "please": true, "hello": true,
}

// Extractor pulls structured slot values out of raw text. Every slot is
// optional and extracted independently; Extract holds no mutable state, so
// identical input always yields identical output.
type Extractor struct {
	defaultRegion string
	now           func() time.Time
}

// NewExtractor builds an extractor. The default region drives phone-number
// validation.
func NewExtractor(config model.EntityConfig) *Extractor {
	return &Extractor{
		defaultRegion: config.DefaultRegion,
		now:           time.Now,
	}
}

// Extract returns all slot values found in text, keyed by slot name.
func (e *Extractor) Extract(text, language string) map[string]any {
	entities := make(map[string]any)
	lower := strings.ToLower(text)

	if phone := e.extractPhone(text); phone != "" {
		entities[model.SlotPhoneNumber] = phone
	}
	if email := extractEmail(text); email != "" {
		entities[model.SlotEmail] = email
	}
	if date := e.extractDate(text); date != "" {
		// The date slot depends on co-occurring task keywords.
		switch {
		case strings.Contains(lower, "check") || strings.Contains(lower, "book"):
			entities[model.SlotCheckInDate] = date
		case strings.Contains(lower, "dining") || strings.Contains(lower, "dinner") || strings.Contains(lower, "lunch"):
			entities[model.SlotReservationDate] = date
		case strings.Contains(lower, "event") || strings.Contains(lower, "party"):
			entities[model.SlotEventDate] = date
		}
	}
	if roomType := extractRoomType(lower); roomType != "" {
		entities[model.SlotRoomType] = roomType
	}
	if count, ok := extractGuestCount(lower); ok {
		entities[model.SlotGuestCount] = count
	}
	if name := extractName(text); name != "" {
		entities[model.SlotGuestName] = name
		entities[model.SlotOrganizerName] = name
	}
	if meal := extractMealType(lower); meal != "" {
		entities[model.SlotMealType] = meal
	}
	if hall := extractHallType(lower); hall != "" {
		entities[model.SlotHallType] = hall
	}
	if hours, ok := extractDuration(lower); ok {
		entities[model.SlotDuration] = hours
	}

	return entities
}

// extractPhone matches one of three phone shapes, then validates through the
// phone-number library. Valid numbers come back in E.164; invalid ones as
// bare digits.
func (e *Extractor) extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		parsed, err := phonenumbers.Parse(match, e.defaultRegion)
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
		return nonDigit.ReplaceAllString(match, "")
	}
	return ""
}

func extractEmail(text string) string {
	return strings.ToLower(emailPattern.FindString(text))
}

// extractDate resolves relative expressions against the current instant
// first, then tries explicit numeric dates against the fixed layout list.
// The result is always formatted as YYYY-MM-DD.
func (e *Extractor) extractDate(text string) string {
	lower := strings.ToLower(text)

	for _, rel := range relativeDates {
		if strings.Contains(lower, rel.expr) {
			return e.now().AddDate(0, 0, rel.days(e.now())).Format("2006-01-02")
		}
	}

	for _, pattern := range datePatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, match); err == nil {
				return parsed.Format("2006-01-02")
			}
		}
	}

	return ""
}

func extractRoomType(lower string) string {
	for _, bucket := range roomTypeBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.roomType
			}
		}
	}
	return ""
}

// extractGuestCount tries explicit count phrases first; failing that, a
// standalone integer counts only when guest-related words appear somewhere
// in the text.
func extractGuestCount(lower string) (int, bool) {
	for _, pattern := range guestCountPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}

	for _, word := range []string{"guest", "people", "person"} {
		if strings.Contains(lower, word) {
			if m := standaloneNumber.FindStringSubmatch(lower); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					return n, true
				}
			}
			break
		}
	}

	return 0, false
}

func extractName(text string) string {
	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			name := strings.TrimSpace(m[1])
			if !notNames[strings.ToLower(name)] {
				return name
			}
		}
	}
	return ""
}

func extractMealType(lower string) string {
	for _, meal := range mealTypes {
		if strings.Contains(lower, meal) {
			return meal
		}
	}
	return ""
}

func extractHallType(lower string) string {
	for _, bucket := range hallBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.hallType
			}
		}
	}
	return ""
}

func extractDuration(lower string) (int, bool) {
	for _, pattern := range durationPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
