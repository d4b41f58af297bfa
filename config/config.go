package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production

	// Ranked query defaults
	RankLimit      int // most-followed result size
	RecommendLimit int // friend-recommendation result size

	// Seed import
	ProfilesCSV string
	EdgesCSV    string
	SeedWorkers int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "socialgraph"),
		Env:     getenv("APP_ENV", "development"),

		RankLimit:      getint("RANK_LIMIT", 10),
		RecommendLimit: getint("RECOMMEND_LIMIT", 10),

		ProfilesCSV: getenv("PROFILES_CSV", "profiles.csv"),
		EdgesCSV:    getenv("EDGES_CSV", "edges.csv"),
		SeedWorkers: getint("SEED_WORKERS", 8),
	}
}
