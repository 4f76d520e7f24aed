package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	SlackBotToken string
	SlackAppToken string
	ChannelID     string
	DatabasePath  string
	RosterPath    string

	VacationAPIURL string
	VacationAPIKey string

	CronOpenThread   string
	CronChaseReports string

	LogLevel    string
	Environment string
	Port        string
}

// Load reads configuration from environment variables and an optional .env
// file. Only the Slack tokens are hard requirements; everything else has a
// default or degrades to a logged no-op at the call site.
func Load() (*Config, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &Config{
		SlackBotToken:    os.Getenv("SLACK_BOT_TOKEN"),
		SlackAppToken:    os.Getenv("SLACK_APP_TOKEN"),
		ChannelID:        os.Getenv("CHANNEL_ID"),
		DatabasePath:     getEnv("DATABASE_PATH", "./standup.db"),
		RosterPath:       getEnv("ROSTER_PATH", "./roster.json"),
		VacationAPIURL:   os.Getenv("VACATION_TRACKER_API_URL"),
		VacationAPIKey:   os.Getenv("VACATION_TRACKER_API_KEY"),
		CronOpenThread:   getEnv("CRON_OPEN_THREAD", "30 9 * * 1-5"),
		CronChaseReports: getEnv("CRON_CHASE_REPORTS", "30 11 * * 1-5"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:      strings.ToLower(getEnv("ENVIRONMENT", "development")),
		Port:             getEnv("PORT", "3000"),
	}

	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is not set")
	}
	if cfg.SlackAppToken == "" {
		return nil, fmt.Errorf("SLACK_APP_TOKEN is not set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
