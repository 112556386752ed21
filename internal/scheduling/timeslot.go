package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeSlots фиксированный список слотов, которые видит пользователь
var TimeSlots = []string{
	"8:00 AM",
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

var (
	labelPattern     = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s+([AaPp][Mm])$`)
	canonicalPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// DecodeTimeLabel переводит "2:00 PM" в "14:00".
// Метка может прийти из редактируемого состояния, поэтому формат проверяется всегда.
func DecodeTimeLabel(label string) (string, error) {
	m := labelPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, label)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, label)
	}

	pm := strings.EqualFold(m[3], "PM")
	switch {
	case pm && hour < 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// EncodeTime переводит "14:00" обратно в "2:00 PM" для повторного отображения
func EncodeTime(canonical string) (string, error) {
	m := canonicalPattern.FindStringSubmatch(strings.TrimSpace(canonical))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, canonical)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, canonical)
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, minute, period), nil
}

// IsKnownTimeSlot проверяет, что метка есть в фиксированном списке
func IsKnownTimeSlot(label string) bool {
	for _, slot := range TimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}
