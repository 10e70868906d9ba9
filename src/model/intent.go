package model

// Classification method tags carried on IntentResult.
const (
	MethodRuleBased     = "rule-based"
	MethodAIBased       = "ai-based"
	MethodKeyword       = "keyword"
	MethodFallback      = "fallback"
	MethodErrorFallback = "error_fallback"
)

// Intents shared by both detection strategies.
const (
	IntentGreeting           = "greeting"
	IntentRoomBooking        = "room_booking"
	IntentRoomInquiry        = "room_inquiry"
	IntentDiningReservation  = "dining_reservation"
	IntentEventBooking       = "event_booking"
	IntentInformationRequest = "information_request"
	IntentBookingModify      = "booking_modification"
	IntentComplaint          = "complaint"
	IntentFarewell           = "farewell"
	IntentBooking            = "booking"
	IntentGeneralInquiry     = "general_inquiry"
)

// IntentResult is the outcome of classifying one message.
type IntentResult struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
}

// Slot names form a closed vocabulary; collected entities are keyed only by
// these.
const (
	SlotCheckInDate     = "check_in_date"
	SlotCheckOutDate    = "check_out_date"
	SlotReservationDate = "reservation_date"
	SlotEventDate       = "event_date"
	SlotRoomType        = "room_type"
	SlotGuestCount      = "guest_count"
	SlotGuestName       = "guest_name"
	SlotOrganizerName   = "organizer_name"
	SlotPhoneNumber     = "phone_number"
	SlotEmail           = "email"
	SlotMealType        = "meal_type"
	SlotHallType        = "hall_type"
	SlotDuration        = "duration"
)

// SlotTemplates lists, in order, the slots a task-bearing intent must fill
// before its task is complete. Intents absent from the map have no slots.
var SlotTemplates = map[string][]string{
	IntentRoomBooking: {
		SlotCheckInDate, SlotCheckOutDate, SlotRoomType,
		SlotGuestCount, SlotGuestName, SlotPhoneNumber,
	},
	IntentBooking: {
		SlotCheckInDate, SlotCheckOutDate, SlotRoomType,
		SlotGuestCount, SlotGuestName, SlotPhoneNumber,
	},
	IntentDiningReservation: {
		SlotReservationDate, SlotMealType, SlotGuestCount, SlotGuestName,
	},
	IntentEventBooking: {
		SlotEventDate, SlotHallType, SlotGuestCount,
		SlotDuration, SlotOrganizerName,
	},
}

// MissingSlots returns the template slots of intent not yet present in
// collected, preserving template order. The result is never nil.
func MissingSlots(intent string, collected map[string]any) []string {
	missing := []string{}
	for _, slot := range SlotTemplates[intent] {
		if _, ok := collected[slot]; !ok {
			missing = append(missing, slot)
		}
	}
	return missing
}
