package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Blob        BlobConfig
	Recognition RecognitionConfig
	LLM         LLMConfig
	Delivery    DeliveryConfig
	Worker      WorkerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string // non-empty selects local single-binary mode
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// BlobConfig holds blob store configuration (S3 or local directory).
type BlobConfig struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional, for MinIO/S3-compatible services
	LocalDir        string // non-empty selects the directory-backed store
	PresignTTL      time.Duration
}

// RecognitionConfig holds OCR orchestration configuration.
type RecognitionConfig struct {
	Engines        []string // ordered preference
	Language       string
	MaxConcurrent  int           // bounded per-task page fan-out
	BaseTimeout    time.Duration // task timeout = BaseTimeout + PerPageTimeout*pages
	PerPageTimeout time.Duration
	TesseractBin   string
	PdftoppmBin    string
	DPI            int
}

// LLMConfig holds model-provider configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	// Circuit breaker settings shared by all model-assisted extraction.
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// DeliveryConfig holds outbound push configuration
type DeliveryConfig struct {
	Timeout     time.Duration
	MaxAttempts int
}

// WorkerConfig holds worker pool sizing.
type WorkerConfig struct {
	RecognitionWorkers int
	DeliveryWorkers    int
	PostProcessWorkers int
	PollInterval       time.Duration
	Lease              time.Duration
}

// LoadConfig loads configuration from the environment. A .env file in the
// working directory is applied first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			SQLitePath:       getEnv("SQLITE_PATH", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Blob: BlobConfig{
			Bucket:          getEnv("BLOB_BUCKET", ""),
			Region:          getEnv("BLOB_REGION", "us-east-1"),
			AccessKeyID:     getEnv("BLOB_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("BLOB_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("BLOB_ENDPOINT", ""),
			LocalDir:        getEnv("BLOB_LOCAL_DIR", ""),
			PresignTTL:      getEnvAsDuration("BLOB_PRESIGN_TTL", 15*time.Minute),
		},
		Recognition: RecognitionConfig{
			Engines:        []string{getEnv("OCR_PRIMARY", "tesseract"), getEnv("OCR_FALLBACK", "tesseract-cli")},
			Language:       getEnv("OCR_LANGUAGE", "eng"),
			MaxConcurrent:  getEnvAsInt("OCR_MAX_CONCURRENT", 4),
			BaseTimeout:    getEnvAsDuration("OCR_BASE_TIMEOUT", 30*time.Second),
			PerPageTimeout: getEnvAsDuration("OCR_PER_PAGE_TIMEOUT", 20*time.Second),
			TesseractBin:   getEnv("TESSERACT_BIN", "tesseract"),
			PdftoppmBin:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			DPI:            getEnvAsInt("OCR_DPI", 300),
		},
		LLM: LLMConfig{
			Model:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:           getEnv("OPENAI_API_KEY", ""),
			BaseURL:          getEnv("OPENAI_BASE_URL", ""),
			Temperature:      getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:          getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			BreakerThreshold: getEnvAsInt("LLM_BREAKER_THRESHOLD", 5),
			BreakerCooldown:  getEnvAsDuration("LLM_BREAKER_COOLDOWN", 60*time.Second),
		},
		Delivery: DeliveryConfig{
			Timeout:     getEnvAsDuration("DELIVERY_TIMEOUT", 15*time.Second),
			MaxAttempts: getEnvAsInt("DELIVERY_MAX_ATTEMPTS", 4),
		},
		Worker: WorkerConfig{
			RecognitionWorkers: getEnvAsInt("RECOGNITION_WORKERS", 4),
			DeliveryWorkers:    getEnvAsInt("DELIVERY_WORKERS", 4),
			PostProcessWorkers: getEnvAsInt("POSTPROCESS_WORKERS", 2),
			PollInterval:       getEnvAsDuration("WORKER_POLL_INTERVAL", time.Second),
			Lease:              getEnvAsDuration("WORKER_LEASE", 5*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Blob.Bucket == "" && c.Blob.LocalDir == "" {
		return NewAppError("CONFIG_ERROR", "BLOB_BUCKET or BLOB_LOCAL_DIR is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
