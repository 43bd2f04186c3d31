package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Environment ("development" or "production"), drives log encoding.
	Env string

	// Database
	DBPath string

	// Presentation defaults
	ItemsPerPage    int
	DefaultCategory string

	// Backup
	AutoBackup bool
	BackupPath string
}

var appConfig *Config

// Load loads configuration from environment variables, reading a .env
// file first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:             getEnv("ENV", "development"),
		DBPath:          getEnv("DB_PATH", "data/inventory.db"),
		ItemsPerPage:    getEnvInt("ITEMS_PER_PAGE", 15),
		DefaultCategory: getEnv("DEFAULT_CATEGORY", "Uncategorized"),
		AutoBackup:      getEnvBool("AUTO_BACKUP", false),
		BackupPath:      getEnv("BACKUP_PATH", "data/backups"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return defaultValue
}
