package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the credentials the DSN is assembled from. The values
// are never logged anywhere in the application.
type DatabaseConfig struct {
	User     string
	Passw    string
	Host     string
	Port     string
	Database string
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Passw),
		c.Host,
		c.Port,
		c.Database,
	)
}

type RedisConfig struct {
	Address  string
	Password string
}

type ReportConfig struct {
	CacheTTL time.Duration
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Report   ReportConfig
	LogPath  string
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			User:     getEnv("DB_USER", "postgres"),
			Passw:    getEnv("DB_PASSW", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Database: getEnv("DB_NAME", "employees"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Report: ReportConfig{
			CacheTTL: time.Minute * 10,
		},
		LogPath: getEnv("LOG_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
