package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Agent    AgentConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini  string
	AgentAPIKey   string
	WebhookSecret string
	SessionSecret string
}

type AgentConfig struct {
	Name         string
	Version      string
	TelexLogBase string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "agent_interactions.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			// Empty Gemini key is a supported mode: every completion is
			// served by the local planner instead of the remote model.
			GoogleGemini:  getEnv("GOOGLE_GEMINI_API_KEY", ""),
			AgentAPIKey:   getEnv("AGENT_API_KEY", ""),
			WebhookSecret: getEnv("AGENT_WEBHOOK_SECRET", ""),
			SessionSecret: getEnv("SESSION_SECRET", ""),
		},
		Agent: AgentConfig{
			Name:         getEnv("AGENT_NAME", "multi-modal-coach-agent"),
			Version:      getEnv("AGENT_VERSION", "1.0.0"),
			TelexLogBase: getEnv("TELEX_LOG_BASE", "https://api.telex.im/agent-logs"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
