package cli

import (
	"fmt"
	"strings"
	"time"
)

// localTimeLayout формат ввода времени без зоны, трактуется в локальной зоне
const localTimeLayout = "2006-01-02 15:04"

// parseTime разбирает RFC3339 или "2006-01-02 15:04"
func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or %q", value, localTimeLayout)
	}
	return t, nil
}

// parseDate разбирает дату 2006-01-02 в локальной зоне
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use %s", value, time.DateOnly)
	}
	return t, nil
}

// splitPair разбирает "key=value"
func splitPair(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid value %q: expected key=value", s)
	}
	return key, strings.TrimSpace(value), nil
}
