package config

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Endpoint        string // overrides the account endpoint, e.g. a local MinIO
	KeyPrefix       string
}

type Config struct {
	DBDriver      string
	DB_URL        string
	Port          string
	JWTSecret     string
	Environment   string
	UploadDir     string
	BlobBackend   string
	MaxUploadSize int64 // bytes
	BulkWorkers   int
	CorsConfig    cors.Options
	R2            R2Config
}

// Load reads the optional env file named by ENV_FILE (default .env) and
// builds the configuration from the process environment.
func Load(logger *zap.Logger) Config {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		logger.Info("no env file found", zap.String("file", envFile))
	} else {
		logger.Info("loaded env file", zap.String("file", envFile))
	}

	return Config{
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DB_URL:        getEnv("DB_URL", ""),
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "not-so-secret-now-is-it?"),
		Environment:   getEnv("ENV", "development"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		BlobBackend:   getEnv("BLOB_BACKEND", "local"),
		MaxUploadSize: int64(getEnvInt(logger, "MAX_UPLOAD_MB", 100)) << 20,
		BulkWorkers:   getEnvInt(logger, "BULK_WORKERS", 4),
		CorsConfig:    CorsConfig(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Endpoint:        getEnv("R2_ENDPOINT", ""),
			KeyPrefix:       getEnv("R2_KEY_PREFIX", "uploads/"),
		},
	}
}

// IsProduction reports whether cookies and logs should use production settings.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(logger *zap.Logger, key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		logger.Warn("invalid integer env, using default",
			zap.String("key", key), zap.String("value", raw), zap.Int("default", fallback))
		return fallback
	}
	return v
}

// CorsConfig allows the comma separated origins to call the API with cookies.
func CorsConfig(origins string) cors.Options {
	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	return cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	}
}
