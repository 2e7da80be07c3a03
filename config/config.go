package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything read from the environment at startup.
type Config struct {
	// Server
	Port         string
	Debug        bool
	LogLevel     string
	CORSOrigins  []string
	EnforceRoles bool

	// Databases
	MongoURI    string
	MongoDB     string
	PostgresURI string
	RedisURL    string
	RabbitMQURL string
	EventsQueue string

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	// AI completion
	LLMProvider    string // openai | gemini | vertex
	OpenAIAPIKey   string
	OpenAIModel    string
	GeminiAPIKey   string
	GeminiModel    string
	VertexProject  string
	VertexLocation string
	VertexModel    string

	// Outbound HTTP (GitHub, AI)
	HTTPTimeout    time.Duration
	GitHubToken    string
	GitHubCacheTTL time.Duration

	// Resume storage
	StorageDriver      string // local | gcs | s3
	UploadDir          string
	UploadURLPrefix    string
	MaxUploadBytes     int64
	GCSBucket          string
	GCSCredentialsFile string
	S3Bucket           string
	S3Region           string
	S3Endpoint         string
	S3AccessKey        string
	S3SecretKey        string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "5001"),
		Debug:        getEnvBool("DEBUG", false),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  getEnvList("CORS_ORIGINS", []string{"*"}),
		EnforceRoles: getEnvBool("ENFORCE_ROLES", false),

		MongoURI:    getEnv("MONGO_URI", ""),
		MongoDB:     getEnv("MONGO_DB", "skillbridge"),
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURL:    firstEnv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
		EventsQueue: getEnv("EVENTS_QUEUE", "profile.skills"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,

		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		VertexProject:  getEnv("VERTEX_PROJECT_ID", ""),
		VertexLocation: getEnv("VERTEX_LOCATION", "us-central1"),
		VertexModel:    getEnv("VERTEX_MODEL", "gemini-1.5-flash"),

		HTTPTimeout:    time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		GitHubCacheTTL: time.Duration(getEnvInt("GITHUB_CACHE_TTL_MINUTES", 360)) * time.Minute,

		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		UploadURLPrefix:    getEnv("UPLOAD_URL_PREFIX", "/uploads"),
		MaxUploadBytes:     int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,
		GCSBucket:          getEnv("GCS_BUCKET", ""),
		GCSCredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Region:           getEnv("S3_REGION", "auto"),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		S3AccessKey:        getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:        getEnv("S3_SECRET_KEY", ""),
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return &ConfigError{Field: "MONGO_URI", Message: "MONGO_URI environment variable is not set"}
	}
	if c.JWTSecret == "" {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET environment variable is not set"}
	}
	switch c.StorageDriver {
	case "local":
	case "gcs":
		if c.GCSBucket == "" {
			return &ConfigError{Field: "GCS_BUCKET", Message: "GCS_BUCKET is required for STORAGE_DRIVER=gcs"}
		}
	case "s3":
		if c.S3Bucket == "" {
			return &ConfigError{Field: "S3_BUCKET", Message: "S3_BUCKET is required for STORAGE_DRIVER=s3"}
		}
	default:
		return &ConfigError{Field: "STORAGE_DRIVER", Message: "STORAGE_DRIVER must be one of local, gcs, s3"}
	}
	switch c.LLMProvider {
	case "openai", "gemini", "vertex":
	default:
		return &ConfigError{Field: "LLM_PROVIDER", Message: "LLM_PROVIDER must be one of openai, gemini, vertex"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := getEnv(k, ""); v != "" {
			return v
		}
	}
	return ""
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
