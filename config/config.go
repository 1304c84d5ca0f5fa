package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port           string
	Debug          bool
	AllowedOrigins []string
	StaticDir      string

	// MongoDB
	MongoURI            string
	DBName              string
	MongoTimeoutSeconds int

	// Agent backend
	AgentBaseURL        string
	AgentTimeoutSeconds int
	AgentRatePerMinute  int

	// Timeouts
	HTTPTimeoutSeconds int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	CookieSecure   bool

	// Uploads
	MaxUploadBytes int64
	PDFBucketName  string

	// AR status
	StatusPageSize int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:           getEnv("PORT", "8080"),
		Debug:          getEnvBool("DEBUG", false),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		StaticDir:      getEnv("STATIC_DIR", ""),

		// MongoDB
		MongoURI:            getEnv("MONGODB_URI", ""),
		DBName:              getEnv("DB_NAME", ""),
		MongoTimeoutSeconds: getEnvInt("MONGO_TIMEOUT_SECONDS", 10),

		// Agent backend
		AgentBaseURL:        strings.TrimRight(getEnv("AGENT_BASE_URL", "http://localhost:8000"), "/"),
		AgentTimeoutSeconds: getEnvInt("AGENT_TIMEOUT_SECONDS", 300),
		AgentRatePerMinute:  getEnvInt("AGENT_RATE_PER_MINUTE", 30),

		// Timeouts
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),

		// Uploads (2MB limit, same as the front-end)
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 2*1024*1024)),
		PDFBucketName:  getEnv("PDF_BUCKET_NAME", ""),

		// AR status
		StatusPageSize: getEnvInt("STATUS_PAGE_SIZE", 10),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return &ConfigError{Field: "MONGODB_URI", Message: "MONGODB_URI is required"}
	}
	if c.DBName == "" {
		return &ConfigError{Field: "DB_NAME", Message: "DB_NAME is required"}
	}
	if c.AgentBaseURL == "" {
		return &ConfigError{Field: "AGENT_BASE_URL", Message: "AGENT_BASE_URL must not be empty"}
	}
	if c.StatusPageSize <= 0 {
		return &ConfigError{Field: "STATUS_PAGE_SIZE", Message: "STATUS_PAGE_SIZE must be positive"}
	}
	if c.MaxUploadBytes <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_BYTES", Message: "MAX_UPLOAD_BYTES must be positive"}
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

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
