package client

import "testing"

func TestQuerySkipsEmptyValues(t *testing.T) {
	if got := query(map[string]string{"status": "", "page": ""}); got != "" {
		t.Errorf("all-empty query = %q, want \"\"", got)
	}
	if got := query(map[string]string{"status": "pending", "search": ""}); got != "?status=pending" {
		t.Errorf("query = %q", got)
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"message":"Candidate not found"}`, "Candidate not found"},
		{`{"error":"bad input"}`, "bad input"},
		{`{"message":"first","error":"second"}`, "first"},
		{`not json`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		if got := extractMessage([]byte(tt.raw)); got != tt.want {
			t.Errorf("extractMessage(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	err := &APIError{StatusCode: 502}
	if err.Error() != "request failed with status 502" {
		t.Errorf("Error() = %q", err.Error())
	}

	err = &APIError{StatusCode: 404, Message: "Candidate not found"}
	if err.Error() != "Candidate not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:5000/api/")
	if c.BaseURL != "http://localhost:5000/api" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
}
