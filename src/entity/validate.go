package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"hoteldesk_nlu/src/model"
)

var (
	emailShape = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	digitsOnly = regexp.MustCompile(`\d`)
)

var dateSlots = map[string]bool{
	model.SlotCheckInDate:     true,
	model.SlotCheckOutDate:    true,
	model.SlotReservationDate: true,
	model.SlotEventDate:       true,
}

// Validate reports whether value is acceptable for slot. Slots without a
// dedicated rule are always valid. A failed validation means the slot stays
// uncollected; it is never an error.
func Validate(slot string, value any) bool {
	switch {
	case slot == model.SlotPhoneNumber:
		return len(digitsOnly.FindAllString(fmt.Sprint(value), -1)) >= 10

	case slot == model.SlotEmail:
		s, ok := value.(string)
		return ok && emailShape.MatchString(s)

	case dateSlots[slot]:
		s, ok := value.(string)
		if !ok {
			return false
		}
		date, err := time.Parse("2006-01-02", s)
		if err != nil {
			return false
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return !date.Before(today)

	case slot == model.SlotGuestCount:
		n, ok := toInt(value)
		return ok && n >= 1 && n <= 100

	case slot == model.SlotDuration:
		n, ok := toInt(value)
		return ok && n >= 1 && n <= 24

	default:
		return true
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
