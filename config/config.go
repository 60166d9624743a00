package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	LLM     LLMConfig
	Triage  TriageConfig
	Storage StorageConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Enabled reports whether remote classification can be attempted at all.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

type TriageConfig struct {
	CacheTTL time.Duration
}

type StorageConfig struct {
	RetryAttempts     int
	RetryInitialDelay time.Duration
}

const (
	defaultLLMTimeout        = 5 * time.Second
	defaultTriageCacheTTL    = 24 * time.Hour
	defaultRetryInitialDelay = 100 * time.Millisecond
)

// LoadConfig reads an optional .env file from the working directory and
// overlays environment variables on top of it.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Asia/Dhaka")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("STORAGE_RETRY_ATTEMPTS", 3)

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			TimeZone:    v.GetString("DB_TIMEZONE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		LLM: LLMConfig{
			APIKey:  v.GetString("OPENAI_API_KEY"),
			Model:   v.GetString("OPENAI_MODEL"),
			BaseURL: v.GetString("OPENAI_BASE_URL"),
			Timeout: parseDuration(v.GetString("LLM_TIMEOUT"), defaultLLMTimeout),
		},
		Triage: TriageConfig{
			CacheTTL: parseDuration(v.GetString("TRIAGE_CACHE_TTL"), defaultTriageCacheTTL),
		},
		Storage: StorageConfig{
			RetryAttempts:     v.GetInt("STORAGE_RETRY_ATTEMPTS"),
			RetryInitialDelay: parseDuration(v.GetString("STORAGE_RETRY_INITIAL_DELAY"), defaultRetryInitialDelay),
		},
	}

	if config.Storage.RetryAttempts < 1 {
		config.Storage.RetryAttempts = 1
	}

	return config, nil
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
