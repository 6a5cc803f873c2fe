package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// client side
	APIBaseURL string
	TokenFile  string

	// server side
	ServerPort  int
	DatabaseURL string
	JWTSecret   string
	TokenTTLMin int

	KafkaAddresses []string

	ESURL        string
	ESUser       string
	ESPassword   string
	ESIndex      string

	LogLevel string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found, using system environment")
	}

	return &Config{
		APIBaseURL: EnvDefault("API_BASE_URL", "http://localhost:8000"),
		TokenFile:  EnvDefault("TOKEN_FILE", ".libman_session.json"),

		ServerPort:  EnvIntDefault("SERVER_PORT", 8000),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTLMin: EnvIntDefault("TOKEN_TTL_MIN", 60),

		KafkaAddresses: CSV(os.Getenv("KAFKA_ADDRESS")),

		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
		ESIndex:      EnvDefault("ES_INDEX", "books"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}
