package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage drivers understood by kvstore.Open.
const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env string

	API       APIConfig
	Log       LogConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	UI        UIConfig
	Downloads DownloadsConfig
	Metrics   MetricsConfig
}

// APIConfig describes how the backend is reached.
type APIConfig struct {
	BaseURL        string
	Timeout        time.Duration
	AutoRefresh    bool
	UserAgent      string
	DefaultPerPage int
}

type LogConfig struct {
	Level  string
	Format string
}

// StorageConfig selects the durable client-state backend.
type StorageConfig struct {
	Driver string
	Path   string
}

type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// UIConfig holds presentation defaults shared by the context providers.
type UIConfig struct {
	DefaultLanguage string
	ViewportWidth   int
}

// DownloadsConfig controls where exported and downloaded files land.
type DownloadsConfig struct {
	Dir string
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}
	cfg.Env = v.GetString("ENV")

	perPage := v.GetInt("DEFAULT_PER_PAGE")
	if perPage <= 0 {
		perPage = 15
	}
	cfg.API = APIConfig{
		BaseURL:        strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Timeout:        parseDuration(v.GetString("API_TIMEOUT"), 30*time.Second),
		AutoRefresh:    v.GetBool("API_AUTO_REFRESH"),
		UserAgent:      v.GetString("API_USER_AGENT"),
		DefaultPerPage: perPage,
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Storage = StorageConfig{
		Driver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		Path:   v.GetString("STORAGE_PATH"),
	}

	cfg.Redis = RedisConfig{
		Host:      v.GetString("REDIS_HOST"),
		Port:      v.GetInt("REDIS_PORT"),
		Password:  v.GetString("REDIS_PASSWORD"),
		DB:        v.GetInt("REDIS_DB"),
		KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.UI = UIConfig{
		DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		ViewportWidth:   v.GetInt("VIEWPORT_WIDTH"),
	}

	cfg.Downloads = DownloadsConfig{Dir: v.GetString("DOWNLOADS_DIR")}
	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("METRICS_ENABLED")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("API_AUTO_REFRESH", false)
	v.SetDefault("API_USER_AGENT", "edu-admin-client/1.0")
	v.SetDefault("DEFAULT_PER_PAGE", 15)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("STORAGE_PATH", "./.client-state.json")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "edu-admin:")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "edu_admin_client")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 4)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("DEFAULT_LANGUAGE", "en")
	v.SetDefault("VIEWPORT_WIDTH", 1280)
	v.SetDefault("DOWNLOADS_DIR", "./downloads")
	v.SetDefault("METRICS_ENABLED", false)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
