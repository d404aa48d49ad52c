package database

import (
	"fmt"
	"time"
)

// dbTimeLayout is fixed width so lexical order equals chronological order.
const dbTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTimeForDB formats a time.Time value as fixed-width UTC RFC3339 text for database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// ParseTimeValue converts whatever the driver returned for a timestamp column into a time.Time.
func ParseTimeValue(v interface{}) (time.Time, error) {
	switch value := v.(type) {
	case time.Time:
		return value.UTC(), nil
	case string:
		return ParseTimeFromDB(value)
	case []byte:
		return ParseTimeFromDB(string(value))
	case nil:
		return time.Time{}, fmt.Errorf("unexpected NULL timestamp")
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}
