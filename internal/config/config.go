package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	DefaultTimezone    string
	AdminUserID        string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./classbot.db"),
		Port:               getEnv("PORT", "3000"),
		DefaultTimezone:    getEnv("DEFAULT_TZ", "UTC"),
		AdminUserID:        getEnv("ADMIN_USER_ID", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
