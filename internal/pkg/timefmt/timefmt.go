// Package timefmt converts between user-typed time strings, canonical
// "HH:MM" duration strings, and integer minutes. Values are durations,
// not clock times: hours are unbounded.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports a string that is not a valid "HH:MM" duration.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q", e.Input)
}

// ParseKeystrokes normalizes free-form numeric input into "HH:MM".
// Non-digit characters are ignored; empty input means "00:00".
//
// Interpretation of the remaining digits n:
//   - n <= 59: minutes
//   - 60..99: hours = n/60, minutes = n%60 (so "90" reads as 01:30)
//   - n > 99: packed HHMM, minutes above 59 clamp to 59 without carrying
//     into hours. The clamp matches how historical entries were recorded
//     and must not be "fixed" to carry.
func ParseKeystrokes(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "00:00"
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		// Digits-only input longer than an int is not something a user
		// can type into a time cell; treat it as empty.
		return "00:00"
	}

	var hours, minutes int
	switch {
	case n <= 59:
		minutes = n
	case n <= 99:
		hours = n / 60
		minutes = n % 60
	default:
		hours = n / 100
		minutes = n % 100
		if minutes > 59 {
			minutes = 59
		}
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// ToMinutes converts an "HH:MM" string to total minutes.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, &FormatError{Input: hhmm}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, &FormatError{Input: hhmm}
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, &FormatError{Input: hhmm}
	}

	return hours*60 + minutes, nil
}

// FromMinutes renders total minutes as "H:MM". Hours are not zero-padded,
// minutes always are. Used for derived totals.
func FromMinutes(total int) string {
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ToHHMM renders total minutes in the canonical zero-padded cell form.
func ToHHMM(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// IsZero reports whether hhmm represents zero recorded time. Malformed
// strings count as zero.
func IsZero(hhmm string) bool {
	m, err := ToMinutes(hhmm)
	return err != nil || m == 0
}
