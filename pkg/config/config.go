package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	GigaChat   GigaChatConfig
	Extraction ExtractionConfig
	Storage    StorageConfig
	Redis      RedisConfig
	Business   BusinessConfig
	Jobs       JobsConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

// ExtractionConfig bounds the best-effort receipt scan.
type ExtractionConfig struct {
	Enabled           bool
	Timeout           time.Duration
	MaxImageDimension int
}

type StorageConfig struct {
	Provider           string // local | gcs
	LocalDir           string
	PublicBaseURL      string
	GCSBucket          string
	GCSCredentialsJSON string
	GCSPublicHost      string
	MaxUploadBytes     int64
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	SettingsTTL time.Duration
}

type BusinessConfig struct {
	TimeZone string
}

type JobsConfig struct {
	ChecklistEnabled  bool
	ChecklistSchedule string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for containers
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	extractionTimeout, _ := strconv.Atoi(getEnv("EXTRACTION_TIMEOUT_SECONDS", "30"))
	maxImageDim, _ := strconv.Atoi(getEnv("EXTRACTION_MAX_IMAGE_DIMENSION", "1600"))
	maxUpload, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	settingsTTL, _ := strconv.Atoi(getEnv("REDIS_SETTINGS_TTL_SECONDS", "30"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "receipt_desk"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(maxConns),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat-Pro"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
		},
		Extraction: ExtractionConfig{
			Enabled:           getEnv("EXTRACTION_ENABLED", "true") == "true",
			Timeout:           time.Duration(extractionTimeout) * time.Second,
			MaxImageDimension: maxImageDim,
		},
		Storage: StorageConfig{
			Provider:           getEnv("STORAGE_PROVIDER", "local"),
			LocalDir:           getEnv("STORAGE_LOCAL_DIR", "uploads"),
			PublicBaseURL:      getEnv("STORAGE_PUBLIC_BASE_URL", "/uploads"),
			GCSBucket:          getEnv("GCS_BUCKET", ""),
			GCSCredentialsJSON: getEnv("GCS_CREDENTIALS_JSON", ""),
			GCSPublicHost:      getEnv("GCS_URL", "storage.googleapis.com"),
			MaxUploadBytes:     maxUpload,
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", ""),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          redisDB,
			SettingsTTL: time.Duration(settingsTTL) * time.Second,
		},
		Business: BusinessConfig{
			TimeZone: getEnv("BUSINESS_TIMEZONE", "UTC"),
		},
		Jobs: JobsConfig{
			ChecklistEnabled:  getEnv("JOBS_CHECKLIST_ENABLED", "true") == "true",
			ChecklistSchedule: getEnv("JOBS_CHECKLIST_SCHEDULE", "0 18 * * *"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// Location resolves the business time zone, falling back to UTC.
func (b BusinessConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
