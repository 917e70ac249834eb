package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string // sqlite or postgres
	DBName    string
	JWTKey    string
	SaltRound int
	SeedData  bool

	NotifyWebhookURL string

	EmailSender   string
	EmailPassword string // SMTP app password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBName:    getEnv("DB_NAME", "socialmentor.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),
		SeedData:  getEnvBool("SEED_DATA", false),

		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),

		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
