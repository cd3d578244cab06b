package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      *AppConfig
	Firebase *FirebaseConfig
	Redis    *RedisConfig
	Storage  *StorageConfig
	AdminAPI *AdminAPIConfig
	Security *SecurityConfig
}

type AppConfig struct {
	Name          string
	Version       string
	Environment   string
	Port          int
	BaseURL       string
	Debug         bool
	LogLevel      string
	LogFormat     string
	EnableLogging bool
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

type StorageConfig struct {
	Provider  string // gcs, s3, local
	Bucket    string
	Region    string
	CDNDomain string
	LocalPath string
}

// AdminAPIConfig points at the external REST backend for the legacy admin
// panel. The source deployment reached it through three different
// hostnames; here a single env-configured base URL is authoritative.
type AdminAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SecurityConfig struct {
	JWTSecret          string
	JWTAccessTokenTTL  time.Duration
	JWTRefreshTokenTTL time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	RateLimitPerMinute int
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	// Missing .env is fine; env vars may come from the environment itself.
	_ = godotenv.Load()

	config := &Config{
		App:      loadAppConfig(),
		Firebase: loadFirebaseConfig(),
		Redis:    loadRedisConfig(),
		Storage:  loadStorageConfig(),
		AdminAPI: loadAdminAPIConfig(),
		Security: loadSecurityConfig(),
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:          getEnv("APP_NAME", "RiderCritic"),
		Version:       getEnv("APP_VERSION", "1.0.0"),
		Environment:   getEnv("APP_ENV", "development"),
		Port:          getEnvAsInt("APP_PORT", 8080),
		BaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		Debug:         getEnvAsBool("APP_DEBUG", true),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		EnableLogging: getEnvAsBool("ENABLE_LOGGING", true),
	}
}

func loadFirebaseConfig() *FirebaseConfig {
	return &FirebaseConfig{
		ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
	}
}

func loadRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnvAsInt("REDIS_PORT", 6379),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
		Enabled:  getEnvAsBool("REDIS_ENABLED", false),
	}
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		Bucket:    getEnv("STORAGE_BUCKET", "ridercritic-uploads"),
		Region:    getEnv("STORAGE_REGION", "us-east-1"),
		CDNDomain: getEnv("STORAGE_CDN_DOMAIN", ""),
		LocalPath: getEnv("STORAGE_LOCAL_PATH", "./uploads"),
	}
}

func loadAdminAPIConfig() *AdminAPIConfig {
	return &AdminAPIConfig{
		BaseURL: getEnv("ADMIN_API_BASE_URL", "https://api.ridercritic.com"),
		Timeout: getEnvAsDuration("ADMIN_API_TIMEOUT", 15*time.Second),
	}
}

func loadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		JWTSecret:          getEnv("JWT_SECRET", "your-super-secret-jwt-key"),
		JWTAccessTokenTTL:  getEnvAsDuration("JWT_ACCESS_TOKEN_TTL", 24*time.Hour),
		JWTRefreshTokenTTL: getEnvAsDuration("JWT_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func IsProduction() bool {
	return getEnv("APP_ENV", "development") == "production"
}

func IsDevelopment() bool {
	return getEnv("APP_ENV", "development") == "development"
}
