package models

import (
	"encoding/json"
	"regexp"
	"testing"
)

func TestNewFormNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^IGSAA-\d{4}-\d{4}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := NewFormNumber()
		if !pattern.MatchString(n) {
			t.Fatalf("form number %q does not match PREFIX-YEAR-NNNN", n)
		}
		seen[n] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected varying form numbers, got %d distinct over 50 draws", len(seen))
	}
}

func TestTriStateJSON(t *testing.T) {
	tests := []struct {
		value TriState
		want  string
	}{
		{Unset, "null"},
		{Yes, "true"},
		{No, "false"},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.value)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.value, err)
		}
		if string(data) != tt.want {
			t.Errorf("marshal %v = %s, want %s", tt.value, data, tt.want)
		}

		var back TriState
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != tt.value {
			t.Errorf("round trip %v = %v", tt.value, back)
		}
	}
}

func TestTriStateIsSet(t *testing.T) {
	if Unset.IsSet() {
		t.Error("Unset should not count as answered")
	}
	if !Yes.IsSet() || !No.IsSet() {
		t.Error("both Yes and No should count as answered")
	}
}

func TestFileSetRequiredSlots(t *testing.T) {
	var fs FileSet
	att := &Attachment{Path: "/tmp/photo.png", Name: "photo.png"}

	for _, field := range RequiredFileFields {
		if fs.Required(field) != nil {
			t.Errorf("slot %s should start empty", field)
		}
		if err := fs.SetRequired(field, att); err != nil {
			t.Fatalf("SetRequired(%s): %v", field, err)
		}
		if fs.Required(field) != att {
			t.Errorf("slot %s not set", field)
		}
	}

	if err := fs.SetRequired("resume", att); err == nil {
		t.Error("expected error for unknown field")
	}
}
