package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml (HOTEL_DATABASE_PASSWORD и т.д.)
const EnvPrefix = "HOTEL"

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	BlockBooking BlockBookingConfig `toml:"block_booking" envconfig:"BLOCK_BOOKING"`
	RateLimit    RateLimitConfig    `toml:"rate_limit" envconfig:"RATE_LIMIT"`
	CORS         CORSConfig         `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

// BlockBookingConfig параметры групповой скидки для агентств (значения по умолчанию для всех отелей)
type BlockBookingConfig struct {
	MinimumRooms       int     `toml:"minimum_rooms" envconfig:"MINIMUM_ROOMS"`
	DiscountPercentage float64 `toml:"discount_percentage" envconfig:"DISCOUNT_PERCENTAGE"`
	MaxRooms           int     `toml:"max_rooms" envconfig:"MAX_ROOMS"`
}

// RateLimitConfig ограничение частоты запросов к публичным эндпоинтам
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" envconfig:"REQUESTS_PER_SECOND"`
	Burst             int     `toml:"burst"`
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "hotel-reservations",
		},
		BlockBooking: BlockBookingConfig{
			MinimumRooms:       5,
			DiscountPercentage: 15,
			MaxRooms:           50,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load загружает конфигурацию:
// 1. значения по умолчанию
// 2. файл path (TOML), если он существует
// 3. файл .env (если есть) и переменные окружения с префиксом HOTEL_
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	// .env необязателен, переменные окружения процесса имеют приоритет
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: apply env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be within 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.BlockBooking.MinimumRooms < 0 {
		return fmt.Errorf("%w: block_booking.minimum_rooms must not be negative", ErrInvalidConfig)
	}
	if c.BlockBooking.DiscountPercentage < 0 || c.BlockBooking.DiscountPercentage > 100 {
		return fmt.Errorf("%w: block_booking.discount_percentage must be within 0..100", ErrInvalidConfig)
	}
	if c.BlockBooking.MaxRooms <= 0 {
		return fmt.Errorf("%w: block_booking.max_rooms must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	return nil
}
