package calendar

import "errors"

// Calendar domain errors
var (
	ErrWeekIndexOutOfRange = errors.New("week index is outside the catalog bounds")
	ErrEmptyCatalog        = errors.New("week window catalog is empty")
	ErrWindowNotFound      = errors.New("week window not found")
)
