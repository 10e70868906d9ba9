package intent

import (
	"regexp"

	"hoteldesk_nlu/src/model"
)

// intentRule binds an intent to its trigger patterns. Table order is part of
// the contract: intents are evaluated top to bottom and the first intent with
// any matching pattern wins, so no cross-intent scoring happens at this tier.
type intentRule struct {
	intent   string
	patterns []*regexp.Regexp
}

// Word boundaries (\b) are ASCII-only in RE2, so patterns for Indic scripts
// use plain alternation instead.
var ruleTable = []intentRule{
	{model.IntentGreeting, compile(
		`\b(hello|hi|hey|good\s+(morning|afternoon|evening)|namaste|vanakkam)\b`,
		`(नमस्ते|हॅलो)`,
		`(வணக்கம்|ஹலோ)`,
	)},
	{model.IntentRoomBooking, compile(
		`\b(book|reserve|want|need)\s+(a\s+)?(room|accommodation)\b`,
		`\b(room)\s+(booking)\b`,
		`(कमरा|அறை)\s*(बुकिंग|பதிவு)`,
		`\b(check\s+in|stay)\b`,
	)},
	{model.IntentRoomInquiry, compile(
		`\b(available|availability)\s+(room|rooms)\b`,
		`\b(room\s+)?(types|price|rate|cost)\b`,
		`\b(what|which|how much)\s+(rooms|room)\b`,
	)},
	{model.IntentDiningReservation, compile(
		`\b(dining|dinner|lunch|breakfast|restaurant)\s+(reservation|booking)\b`,
		`\b(table|reserve|book)\s+(for\s+)?(dinner|lunch|breakfast)\b`,
		`(भोजन|खाना)\s*(बुकिंग)`,
	)},
	{model.IntentEventBooking, compile(
		`\b(party\s+hall|event\s+hall|conference\s+room|banquet)\b`,
		`\b(book|rent|need)\s+(hall|venue)\b`,
		`\b(wedding|birthday|corporate)\s+(event|party)\b`,
	)},
	{model.IntentInformationRequest, compile(
		`\b(tell\s+me|information|details|know)\s+(about)\b`,
		`\b(what|where|when|how)\s+(is|are|do|does)\b`,
		`\b(amenities|facilities|services)\b`,
		`\b(check\s+in|check\s+out)\s+(time|timing)\b`,
	)},
	{model.IntentBookingModify, compile(
		`\b(change|modify|cancel|update)\s+(my\s+)?(booking|reservation)\b`,
		`\b(reschedule|postpone)\b`,
	)},
	{model.IntentComplaint, compile(
		`\b(complaint|problem|issue|not\s+happy|disappointed|terrible|bad)\b`,
		`(शिकायत|समस्या)`,
	)},
	{model.IntentFarewell, compile(
		`\b(bye|goodbye|thanks|thank\s+you)\b`,
		`(धन्यवाद)`,
	)},
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

// RuleIntents returns the intent labels of the rule table in table order.
// This doubles as the allowed-intent list sent to the statistical backend.
func RuleIntents() []string {
	intents := make([]string, 0, len(ruleTable))
	for _, rule := range ruleTable {
		intents = append(intents, rule.intent)
	}
	return intents
}
