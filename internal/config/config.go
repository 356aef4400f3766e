package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by EMGINE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("EMGINE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	return intOr("SERVER_PORT", 8080)
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst := intOr("RATE_LIMIT_BURST", 20)
	if burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// JournalPath is the sqlite file the replay tool appends to.
func JournalPath() string {
	p := os.Getenv("JOURNAL_PATH")
	if p == "" {
		return "emgine_journal.db"
	}
	return p
}

// DefaultSlots is the inventory size given to newly created agents.
func DefaultSlots() int {
	n := intOr("DEFAULT_SLOTS", 3)
	if n <= 0 {
		return 3
	}
	return n
}

// Thresholds are the elicitation thresholds, in inventory distance units.
type Thresholds struct {
	Joy              int
	DisgustSatisfied int
	DisgustNotice    int
}

// AppraisalThresholds reads JOY_EPSILON, DISGUST_SATISFIED_EPSILON and
// DISGUST_NOTICE_EPSILON. All default to zero.
func AppraisalThresholds() Thresholds {
	return Thresholds{
		Joy:              intOr("JOY_EPSILON", 0),
		DisgustSatisfied: intOr("DISGUST_SATISFIED_EPSILON", 0),
		DisgustNotice:    intOr("DISGUST_NOTICE_EPSILON", 0),
	}
}

func intOr(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
