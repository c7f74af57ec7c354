package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	DatabaseURL string

	JWTSecret           string
	JWTExpiresInSeconds int64

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPUseTLS   bool

	// Base URL of the frontend reset page; the emailed link is <base>/reset/<token>.
	ResetLinkBaseURL string

	RapidAPIKey  string
	RapidAPIHost string

	GeocodeAPIKey string
}

// Load reads configuration from the environment. A .env file is honored when
// present so local runs match the deployed shape.
func Load() (*Config, error) {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "jtaclogs")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	secret := os.Getenv("JWT_KEY")
	if secret == "" {
		return nil, fmt.Errorf("JWT_KEY is required")
	}

	expiresIn, _ := strconv.ParseInt(getEnv("JWT_EXPIRES_IN_SECONDS", "3600"), 10, 64)
	if expiresIn <= 0 {
		expiresIn = 3600
	}

	return &Config{
		Port:                 getEnv("PORT", "8082"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabaseURL:          databaseURL,
		JWTSecret:            secret,
		JWTExpiresInSeconds:  expiresIn,
		SMTPHost:             os.Getenv("SMTP_HOST"),
		SMTPPort:             getEnv("SMTP_PORT", "587"),
		SMTPUser:             os.Getenv("SMTP_USER"),
		SMTPPassword:         os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:             os.Getenv("SMTP_FROM"),
		SMTPUseTLS:           getEnv("SMTP_USE_TLS", "false") == "true",
		ResetLinkBaseURL:     getEnv("RESET_LINK_BASE_URL", "http://localhost:3000"),
		RapidAPIKey:          os.Getenv("RAPIDAPI_KEY"),
		RapidAPIHost:         getEnv("RAPIDAPI_HOST", "unogsng.p.rapidapi.com"),
		GeocodeAPIKey:        os.Getenv("GEOCODE_API_KEY"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
