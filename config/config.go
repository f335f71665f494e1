package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the process reads from the environment.
// Defaults reproduce the mock environment the frontend was built against.
type Config struct {
	Port      string
	JWTSecret string

	// MockDelay is the artificial latency applied to every datastore
	// operation, simulating a remote API.
	MockDelay time.Duration

	// DatabaseDSN points at the in-process SQLite database. The default is
	// a shared memory-mode database, so nothing survives a restart.
	DatabaseDSN string

	// MockPassword is the single shared staff password. Development
	// stand-in, not a credential store.
	MockPassword string

	// StorageDir, when set, persists carts and sessions as JSON files
	// under the directory instead of holding them in memory.
	StorageDir string

	SimulatorInterval time.Duration
	SimulatorChance   float64

	// StrictStatusFlow swaps the anything-goes transition policy for the
	// forward-only one.
	StrictStatusFlow bool
}

func Load() Config {
	return Config{
		Port:              getenv("PORT", "8080"),
		JWTSecret:         getenv("JWT_SECRET", "gourmetgo-dev-secret"),
		MockDelay:         time.Duration(getenvInt("MOCK_API_DELAY_MS", 1000)) * time.Millisecond,
		DatabaseDSN:       getenv("DATABASE_DSN", "file:gourmetgo?mode=memory&cache=shared"),
		MockPassword:      getenv("MOCK_PASSWORD", "1234"),
		StorageDir:        getenv("STORAGE_DIR", ""),
		SimulatorInterval: time.Duration(getenvInt("SIMULATOR_INTERVAL_MS", 30000)) * time.Millisecond,
		SimulatorChance:   getenvFloat("SIMULATOR_CHANCE", 0.1),
		StrictStatusFlow:  getenvBool("STRICT_STATUS_FLOW", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
