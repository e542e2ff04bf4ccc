// Package utils provides small formatting helpers shared by the CLIs and
// the certificate renderer.
package utils

import (
	"fmt"
	"time"
)

// FormatFileSize renders a byte count the way the admin console does.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

// FormatDate renders a form date as dd/MM/yyyy, the format used throughout
// the nomination form.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "Not provided"
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders a timestamp for review and note history displays.
func FormatDateTime(t time.Time) string {
	return t.Format("2 Jan 2006 15:04")
}

// ParseDate parses a dd/MM/yyyy form date. Empty input yields nil.
func ParseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("02/01/2006", v)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected dd/MM/yyyy", v)
	}
	return &t, nil
}
