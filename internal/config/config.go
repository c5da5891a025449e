package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/pkg/types"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "BOOKING"

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	CORS     CORSConfig     `toml:"cors"`
	Booking  BookingConfig  `toml:"booking"`
	Events   EventsConfig   `toml:"events"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Timezone        string `toml:"timezone"`
}

// Location часовой пояс, в котором считаются "сегодня" и "сейчас"
func (s ServerConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
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

// DSN строка подключения для lib/pq. Значения в кавычках: пароль может содержать пробелы и '
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSN(d.Host), d.Port, quoteDSN(d.User), quoteDSN(d.Password), quoteDSN(d.DBName), quoteDSN(d.SSLMode))
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSN(value string) string {
	return "'" + dsnEscaper.Replace(value) + "'"
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки входа и токенов сессии
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
	Issuer          string `toml:"issuer"`
	AdminCodeHash   string `toml:"admin_code_hash"` // bcrypt
	BcryptCost      int    `toml:"bcrypt_cost"`
}

// TokenTTL время жизни токена
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// EventsConfig публикация событий бронирования в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// BlackoutConfig заблокированный интервал времени
type BlackoutConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
	Label string `toml:"label"`
}

// BookingConfig политика бронирования
type BookingConfig struct {
	AllowedDurations []int            `toml:"allowed_durations"`
	BusinessStart    string           `toml:"business_start"`
	BusinessEnd      string           `toml:"business_end"`
	Blackouts        []BlackoutConfig `toml:"blackouts"`
}

// Rules конвертирует секцию [booking] в доменную политику
func (b BookingConfig) Rules() domain.BookingRules {
	rules := domain.BookingRules{
		AllowedDurations: append([]int(nil), b.AllowedDurations...),
		BusinessWindow: domain.TimeWindow{
			Start: types.TimeString(b.BusinessStart),
			End:   types.TimeString(b.BusinessEnd),
			Label: b.BusinessStart + "-" + b.BusinessEnd,
		},
		BlackoutWindows: make([]domain.TimeWindow, 0, len(b.Blackouts)),
	}

	for _, w := range b.Blackouts {
		label := w.Label
		if label == "" {
			label = w.Start + "-" + w.End
		}
		rules.BlackoutWindows = append(rules.BlackoutWindows, domain.TimeWindow{
			Start: types.TimeString(w.Start),
			End:   types.TimeString(w.End),
			Label: label,
		})
	}

	return rules
}

// envOverrides значения из окружения, имеющие приоритет над файлом.
// Секреты удобнее передавать так, а не хранить в config.toml.
type envOverrides struct {
	HTTPPort      int    `envconfig:"HTTP_PORT"`
	DBHost        string `envconfig:"DB_HOST"`
	DBPort        int    `envconfig:"DB_PORT"`
	DBUser        string `envconfig:"DB_USER"`
	DBPassword    string `envconfig:"DB_PASSWORD"`
	DBName        string `envconfig:"DB_NAME"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
	JWTSecret     string `envconfig:"JWT_SECRET"`
	AdminCodeHash string `envconfig:"ADMIN_CODE_HASH"`
	AMQPURL       string `envconfig:"AMQP_URL"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	rules := domain.DefaultBookingRules()
	blackouts := make([]BlackoutConfig, 0, len(rules.BlackoutWindows))
	for _, w := range rules.BlackoutWindows {
		blackouts = append(blackouts, BlackoutConfig{Start: w.Start.String(), End: w.End.String(), Label: w.Label})
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Timezone:        "Europe/Stockholm",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "room_booking",
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
			ServiceName: "room-booking-service",
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 8 * 60,
			Issuer:          "room-booking-service",
		},
		Booking: BookingConfig{
			AllowedDurations: rules.AllowedDurations,
			BusinessStart:    rules.BusinessWindow.Start.String(),
			BusinessEnd:      rules.BusinessWindow.End.String(),
			Blackouts:        blackouts,
		},
		Events: EventsConfig{
			Exchange: "room-booking.events",
		},
	}
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения BOOKING_*
func Load(path string) (*Config, error) {
	cfg := Default()

	// Списки декодируются поверх пустых срезов, иначе toml дополняет элементы значений по умолчанию
	defaults := cfg.Booking
	cfg.Booking.AllowedDurations = nil
	cfg.Booking.Blackouts = nil

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if !meta.IsDefined("booking", "allowed_durations") {
		cfg.Booking.AllowedDurations = defaults.AllowedDurations
	}
	if !meta.IsDefined("booking", "blackouts") {
		cfg.Booking.Blackouts = defaults.Blackouts
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	if env.DBHost != "" {
		c.Database.Host = env.DBHost
	}
	if env.DBPort != 0 {
		c.Database.Port = env.DBPort
	}
	if env.DBUser != "" {
		c.Database.User = env.DBUser
	}
	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.DBName != "" {
		c.Database.DBName = env.DBName
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
	if env.JWTSecret != "" {
		c.Auth.JWTSecret = env.JWTSecret
	}
	if env.AdminCodeHash != "" {
		c.Auth.AdminCodeHash = env.AdminCodeHash
	}
	if env.AMQPURL != "" {
		c.Events.URL = env.AMQPURL
	}

	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if _, err := c.Server.Location(); err != nil {
		return fmt.Errorf("%w: server.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s_JWT_SECRET)", ErrInvalidConfig, EnvPrefix)
	}
	if c.Auth.AdminCodeHash == "" {
		return fmt.Errorf("%w: auth.admin_code_hash is required (or %s_ADMIN_CODE_HASH)", ErrInvalidConfig, EnvPrefix)
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Events.Enabled && (c.Events.URL == "" || c.Events.Exchange == "") {
		return fmt.Errorf("%w: events.url and events.exchange are required when events are enabled", ErrInvalidConfig)
	}
	if err := c.Booking.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: booking: %v", ErrInvalidConfig, err)
	}
	return nil
}
