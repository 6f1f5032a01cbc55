package utils

import "time"

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// SortableDate renders a date so that string order is chronological order.
// The zero time renders empty.
func SortableDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(layoutDate)
}

// SortableDateTime is SortableDate with a time component.
func SortableDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(layoutDateTime)
}
