package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Ollama    OllamaConfig
	Embedding EmbeddingConfig
	Gemini    GeminiConfig
	Storage   StorageConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogJSON  bool
	LogDebug bool
}

type OllamaConfig struct {
	Host            string
	ChatTimeout     time.Duration
	PreferredModels []string
}

type EmbeddingConfig struct {
	Provider string
	Model    string
	Timeout  time.Duration
}

type GeminiConfig struct {
	APIKey     string
	EmbedModel string
}

type StorageConfig struct {
	TempDir     string
	MaxFileSize int64
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// DefaultPreferredModels is walked in order when picking a chat model.
var DefaultPreferredModels = []string{"llama3.2", "llama3.1", "llama2", "mistral", "codellama"}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "3000"),
			Env:      getEnv("ENV", "development"),
			LogJSON:  getEnvAsBool("LOG_JSON", false),
			LogDebug: getEnvAsBool("LOG_DEBUG", false),
		},
		Ollama: OllamaConfig{
			Host:            getEnv("OLLAMA_HOST", "http://127.0.0.1:11434"),
			ChatTimeout:     getEnvAsDuration("OLLAMA_CHAT_TIMEOUT", "120s"),
			PreferredModels: getEnvAsList("OLLAMA_PREFERRED_MODELS", DefaultPreferredModels),
		},
		Embedding: EmbeddingConfig{
			Provider: strings.ToLower(getEnv("EMBEDDING_PROVIDER", "ollama")),
			Model:    getEnv("EMBEDDING_MODEL", "all-minilm"),
			Timeout:  getEnvAsDuration("EMBEDDING_TIMEOUT", "30s"),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		},
		Storage: StorageConfig{
			TempDir:     getEnv("TEMP_DIR", os.TempDir()),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", "2h"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "5m"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// getEnvAsList splits a comma separated value, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return append([]string(nil), defaultValue...)
	}

	var out []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return out
}
