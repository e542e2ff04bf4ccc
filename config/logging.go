package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogFile is where CLI logs are appended, alongside stdout.
func LogFile() string {
	if v := os.Getenv("LOG_FILE"); v != "" {
		return v
	}
	return filepath.Join("logs", "nomination-portal.log")
}

// InitLogging sends standard-logger output to both stdout and the log file.
// The returned file, when non-nil, is the caller's to close. If the file
// cannot be opened logging degrades to stdout only.
func InitLogging() (*os.File, io.Writer) {
	path := LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("Warning: could not create log directory: %v", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: could not open log file: %v", err)
		log.SetOutput(os.Stdout)
		return nil, os.Stdout
	}

	w := io.MultiWriter(os.Stdout, f)
	log.SetOutput(w)
	return f, w
}
