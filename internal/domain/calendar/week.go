package calendar

import (
	"time"
)

// MaskMode selects which navigation rule a disabled mask is built for.
type MaskMode string

const (
	// MaskAll is the default navigation mask over the whole catalog.
	MaskAll MaskMode = "all"
	// MaskPastDue restricts navigation to weeks that are already due.
	// The disabling rule is the same as MaskAll; the caller limits the
	// catalog it passes in.
	MaskPastDue MaskMode = "pastDue"
)

// FindCurrentWeekIndex returns the index of the first window containing
// today. When today falls outside the catalog's covered range the last
// window's index is returned; an empty catalog yields -1.
func FindCurrentWeekIndex(catalog []WeekWindow, today time.Time) int {
	if len(catalog) == 0 {
		return -1
	}
	for i, w := range catalog {
		if w.Contains(today) {
			return i
		}
	}
	return len(catalog) - 1
}

// ResolveWindow looks up a window by catalog index.
func ResolveWindow(catalog []WeekWindow, index int) (WeekWindow, error) {
	if index < 0 || index >= len(catalog) {
		return WeekWindow{}, ErrWeekIndexOutOfRange
	}
	return catalog[index], nil
}

// DisabledMask marks weeks that may not be navigated to: any week whose
// start date is strictly after today. If that leaves the whole mask
// false the catalog ends at or before today, and one trailing true is
// appended so forward navigation always hits a terminal boundary.
func DisabledMask(catalog []WeekWindow, mode MaskMode, today time.Time) []bool {
	_ = mode // both modes share the disabling rule
	day := Midnight(today)

	mask := make([]bool, len(catalog))
	any := false
	for i, w := range catalog {
		if Midnight(w.StartDate).After(day) {
			mask[i] = true
			any = true
		}
	}
	if !any {
		mask = append(mask, true)
	}
	return mask
}

// FutureCutoffMask marks weeks starting more than one calendar month
// after today, with the same trailing-true fallback as DisabledMask.
func FutureCutoffMask(catalog []WeekWindow, today time.Time) []bool {
	cutoff := Midnight(today).AddDate(0, 1, 0)

	mask := make([]bool, len(catalog))
	any := false
	for i, w := range catalog {
		if Midnight(w.StartDate).After(cutoff) {
			mask[i] = true
			any = true
		}
	}
	if !any {
		mask = append(mask, true)
	}
	return mask
}
