package utils

import (
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.bytes); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "Not provided" {
		t.Errorf("FormatDate(nil) = %q", got)
	}

	date := time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&date); got != "12/05/1990" {
		t.Errorf("FormatDate = %q, want 12/05/1990", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("12/05/1990")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got == nil || !got.Equal(time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", got)
	}

	if got, err := ParseDate(""); err != nil || got != nil {
		t.Errorf("ParseDate(\"\") = %v, %v, want nil, nil", got, err)
	}

	if _, err := ParseDate("1990-05-12"); err == nil {
		t.Error("ISO date should be rejected")
	}
}
