package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig кэш снимка настроек. При enabled = false настройки читаются из БД на каждый запрос.
type RedisConfig struct {
	Enabled            bool   `toml:"enabled"`
	Address            string `toml:"address"`
	Password           string `toml:"password"`
	DB                 int    `toml:"db"`
	SettingsTTLSeconds int    `toml:"settings_ttl_seconds"`
}

// SettingsTTL время жизни закэшированных настроек
func (r RedisConfig) SettingsTTL() time.Duration {
	return time.Duration(r.SettingsTTLSeconds) * time.Second
}

// BookingConfig параметры движка, не хранящиеся в таблице settings
type BookingConfig struct {
	Timezone               string `toml:"timezone"`
	BlackoutsFile          string `toml:"blackouts_file"`
	BlackoutsReloadSeconds int    `toml:"blackouts_reload_seconds"`
}

// Location часовой пояс сервиса. Вызывать после Validate.
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BlackoutsReloadInterval период проверки файла блэкаутов
func (b BookingConfig) BlackoutsReloadInterval() time.Duration {
	return time.Duration(b.BlackoutsReloadSeconds) * time.Second
}

// Load читает TOML файл, подставляет ${ENV} переменные, заполняет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefaultString(&c.Database.Host, "localhost")
	setDefault(&c.Database.Port, 5432)
	setDefaultString(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefaultString(&c.Logs.Level, "info")

	setDefaultString(&c.Metrics.Path, "/metrics")
	setDefaultString(&c.Metrics.ServiceName, "availability-service")

	setDefaultString(&c.Redis.Address, "localhost:6379")
	setDefault(&c.Redis.SettingsTTLSeconds, 60)

	setDefaultString(&c.Booking.Timezone, "UTC")
	setDefault(&c.Booking.BlackoutsReloadSeconds, 30)
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port: out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Errorf("database.port: out of range: %d", c.Database.Port))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname: required"))
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, fmt.Errorf("database.max_idle_conns: %d exceeds max_open_conns %d",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns))
	}
	if c.Redis.SettingsTTLSeconds < 0 {
		errs = append(errs, fmt.Errorf("redis.settings_ttl_seconds: negative: %d", c.Redis.SettingsTTLSeconds))
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("booking.timezone: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setDefaultString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
