// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"time"

	"findoc-analyzer/pkg/utils"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs at startup. The LLM credential
// and the persistence target are external-collaborator concerns; they arrive
// here as opaque strings.
type Config struct {
	Addr          string
	DBPath        string
	UploadDir     string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	StageTimeout  time.Duration
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing values fall back to development defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getenv("ADDR", ":8080"),
		DBPath:        getenv("DB_PATH", "analyzer.db"),
		UploadDir:     getenv("UPLOAD_DIR", "data"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		StageTimeout:  utils.ParseDuration(os.Getenv("STAGE_TIMEOUT"), 2*time.Minute),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
