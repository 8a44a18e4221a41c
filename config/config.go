package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	DBUrl       string
	FrontendURL string
	// Auth provider (hosted identity; JWT validation only on our side)
	AuthProviderURL string
	JWTSecret       string
	// External AI services
	AIServiceURL string
	AIServiceKey string
	// Job posting scraper service
	ScraperURL string
	ScraperKey string
	// PDF renderer service
	RendererURL string
	// Redis (snapshot cache + rate limiting)
	RedisURL      string
	RedisPassword string
	// Object storage (credential documents, profile photos)
	S3Provider        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	WasabiEndpoint    string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAIThreshold     int
	// When Redis is down: reject AI-endpoint traffic instead of falling
	// back to the in-memory limiter
	RateLimitFailClosed bool
	// Talent export cap
	TalentExportMaxRows int
}

func LoadConfig() (*Config, error) {
	// .env only exists locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		// Trim trailing slash to prevent double slashes when composing URLs
		AuthProviderURL: strings.TrimRight(getEnv("AUTH_PROVIDER_URL", ""), "/"),
		JWTSecret:       getEnv("JWT_SECRET", getEnv("AUTH_JWT_SECRET", "")),
		AIServiceURL:    strings.TrimRight(getEnv("AI_SERVICE_URL", ""), "/"),
		AIServiceKey:    getEnv("AI_SERVICE_KEY", ""),
		ScraperURL:      strings.TrimRight(getEnv("SCRAPER_URL", ""), "/"),
		ScraperKey:      getEnv("SCRAPER_KEY", ""),
		RendererURL:     strings.TrimRight(getEnv("RENDERER_URL", ""), "/"),
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		// Object storage
		S3Provider:        getEnv("S3_PROVIDER", "aws"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "eu-west-1"),
		S3Bucket:          getEnv("S3_BUCKET", "cv-match-documents"),
		WasabiEndpoint:    getEnv("WASABI_ENDPOINT", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitAIThreshold:     getEnvInt("RATE_LIMIT_AI_THRESHOLD", 10),
		RateLimitFailClosed:      getEnvBool("RATE_LIMIT_FAIL_CLOSED", false),
		TalentExportMaxRows:      getEnvInt("TALENT_EXPORT_MAX_ROWS", 10000),
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Profile snapshots and rate limiting will be unavailable.")
	}
	if cfg.AIServiceURL == "" {
		log.Println("WARNING: AI_SERVICE_URL not configured. CV tailoring and interview practice will fail.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
