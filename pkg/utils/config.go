package utils

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	NeynarAPIKey  string
	NeynarBaseURL string
	DataDir       string // where catalog.json and the derived views live
	TopCount      int
	NewCount      int
}

func LoadConfig() Config {
	baseURL := os.Getenv("FAPPSTORE_NEYNAR_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.neynar.com/v2"
	}

	dataDir := os.Getenv("FAPPSTORE_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = "."
		}
		dataDir = filepath.Join(home, ".fappstore", "public")
	}

	return Config{
		NeynarAPIKey:  os.Getenv("NEYNAR_API_KEY"),
		NeynarBaseURL: baseURL,
		DataDir:       dataDir,
		TopCount:      envInt("FAPPSTORE_TOP_COUNT", 50),
		NewCount:      envInt("FAPPSTORE_NEW_COUNT", 50),
	}
}

// envInt parses an integer env var; falls back to def on absence or bad input.
func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
