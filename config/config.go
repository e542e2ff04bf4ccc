package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file if one is present. Environment variables win.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// APIBaseURL is the portal API root, e.g. http://localhost:5000/api.
func APIBaseURL() string {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:5000/api"
}

// ElectionYear is fixed per deployment; defaults to the current year.
func ElectionYear() int {
	if v := os.Getenv("ELECTION_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			return year
		}
	}
	return time.Now().Year()
}

// CertificateDir is where generated certificates are written.
func CertificateDir() string {
	if v := os.Getenv("CERTIFICATE_DIR"); v != "" {
		return v
	}
	return "./certificates"
}

// SessionFile is where the admin login session is persisted.
func SessionFile() string {
	if v := os.Getenv("SESSION_FILE"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".igsaa-nomination", "session.json")
	}
	return filepath.Join(home, ".igsaa-nomination", "session.json")
}
