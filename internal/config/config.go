package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken      string        `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN              string        `mapstructure:"DB_DSN"`
	Environment        string        `mapstructure:"ENV"`
	MigrationsPath     string        `mapstructure:"MIGRATIONS_PATH"`
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	DraftTTL           time.Duration `mapstructure:"DRAFT_TTL"`
	SchedulingAPIURL   string        `mapstructure:"SCHEDULING_API_URL"`
	SchedulingAPIToken string        `mapstructure:"SCHEDULING_API_TOKEN"`
	SubmitTimeout      time.Duration `mapstructure:"SUBMIT_TIMEOUT"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv читает конфигурацию только из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBDSN:              os.Getenv("DB_DSN"),
		TelegramToken:      os.Getenv("TELEGRAM_TOKEN"),
		Environment:        os.Getenv("ENV"),
		MigrationsPath:     os.Getenv("MIGRATIONS_PATH"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		SchedulingAPIURL:   os.Getenv("SCHEDULING_API_URL"),
		SchedulingAPIToken: os.Getenv("SCHEDULING_API_TOKEN"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	var err error
	if cfg.DraftTTL, err = durationEnv("DRAFT_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SubmitTimeout, err = durationEnv("SUBMIT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.SchedulingAPIURL == "" {
		return nil, fmt.Errorf("SCHEDULING_API_URL is required but not set")
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// IsProduction проверяет окружение
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
