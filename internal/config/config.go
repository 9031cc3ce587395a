package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/clickcy/clickbarber/pkg/types"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Agenda   AgendaConfig   `toml:"agenda"`
	Notify   NotifyConfig   `toml:"notify"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
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

// AgendaConfig рабочее окно дневной сетки
type AgendaConfig struct {
	DayStart    string `toml:"day_start"`
	DayEnd      string `toml:"day_end"`
	SlotMinutes int    `toml:"slot_minutes"`
}

// NotifyConfig интеграция с сервисом уведомлений
type NotifyConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in (0, 65535], got %d", c.Server.HTTPPort)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}

	if c.Logs.File == "" {
		return fmt.Errorf("logs.file is required")
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}

	if c.Notify.Enabled && c.Notify.URL == "" {
		return fmt.Errorf("notify.url is required when notifications are enabled")
	}

	if err := types.TimeString(c.Agenda.DayStart).Validate(); err != nil {
		return fmt.Errorf("agenda.day_start: %w", err)
	}

	if err := types.TimeString(c.Agenda.DayEnd).Validate(); err != nil {
		return fmt.Errorf("agenda.day_end: %w", err)
	}

	if c.Agenda.SlotMinutes <= 0 {
		return fmt.Errorf("agenda.slot_minutes must be positive, got %d", c.Agenda.SlotMinutes)
	}

	return nil
}
