package config

import (
	"fmt"
	"os"
)

type Config struct {
	Env        string
	ServerPort string

	// Storage: com DatabaseURL vazio o processo sobe no backend em
	// memória. A escolha é feita uma vez no boot e não muda depois.
	DatabaseURL  string
	DeployTarget string
	SeedDemoData bool

	RedisURL string

	SMTPHost string
	SMTPPort string
	SMTPFrom string
}

func Load() *Config {
	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DeployTarget: getEnv("DEPLOY_TARGET", ""),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "") == "true",

		RedisURL: getEnv("REDIS_URL", ""),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", "1025"),
		SMTPFrom: getEnv("SMTP_FROM", "no-reply@bookora.app"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
