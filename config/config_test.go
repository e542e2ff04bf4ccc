package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	if got := APIBaseURL(); got != "http://localhost:5000/api" {
		t.Errorf("default APIBaseURL = %q", got)
	}

	t.Setenv("API_BASE_URL", "https://portal.example.org/api")
	if got := APIBaseURL(); got != "https://portal.example.org/api" {
		t.Errorf("APIBaseURL = %q", got)
	}
}

func TestElectionYear(t *testing.T) {
	t.Setenv("ELECTION_YEAR", "2030")
	if got := ElectionYear(); got != 2030 {
		t.Errorf("ElectionYear = %d, want 2030", got)
	}

	t.Setenv("ELECTION_YEAR", "not-a-year")
	if got := ElectionYear(); got != time.Now().Year() {
		t.Errorf("unparseable ELECTION_YEAR should fall back to the current year, got %d", got)
	}
}

func TestLogFile(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	if got := LogFile(); got != filepath.Join("logs", "nomination-portal.log") {
		t.Errorf("default LogFile = %q", got)
	}

	t.Setenv("LOG_FILE", "/tmp/custom.log")
	if got := LogFile(); got != "/tmp/custom.log" {
		t.Errorf("LogFile = %q", got)
	}
}

func TestInitLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cli.log")
	t.Setenv("LOG_FILE", path)
	defer log.SetOutput(os.Stderr)

	f, _ := InitLogging()
	if f == nil {
		t.Fatal("InitLogging returned no file")
	}
	defer f.Close()

	log.Print("logging initialized")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "logging initialized") {
		t.Errorf("log file missing entry: %q", data)
	}
}
