package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/pkg/psqlbuilder"
)

// Переменные окружения, переопределяющие секреты из файла
const (
	EnvResendAPIKey     = "RESEND_API_KEY"
	EnvDatabasePassword = "DATABASE_PASSWORD"
)

// Провайдеры email
const (
	ProviderResend = "resend"
	ProviderLog    = "log"
)

// ErrInvalidConfig возвращается, если значение из конфига вне допустимого диапазона
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Mailer    MailerConfig    `toml:"mailer"`
	Email     EmailConfig     `toml:"email"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | sqlite3
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл sqlite3
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig период бронирования и правила доступности.
// Нулевой год или месяц означает месяц запуска сервиса.
type BookingConfig struct {
	Year          int    `toml:"year"`
	Month         int    `toml:"month"`
	ClosedWeekday string `toml:"closed_weekday"`
	Timezone      string `toml:"timezone"`
	StoreTimeout  int    `toml:"store_timeout"` // секунды
}

// MailerConfig клиентская сторона эндпоинта подтверждений.
// Пустой BaseURL означает доставку через use case этого же процесса.
type MailerConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"` // секунды
}

// EmailConfig сторона провайдера эндпоинта подтверждений
type EmailConfig struct {
	Provider        string   `toml:"provider"`
	APIKey          string   `toml:"api_key"`
	From            string   `toml:"from"`
	Subject         string   `toml:"subject"`
	BusinessAddress []string `toml:"business_address"`
}

type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // IP или CIDR, которым разрешено выставлять X-Forwarded-For
}

// Load читает toml файл поверх значений по умолчанию, применяет env и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация для локального запуска
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 20,
		},
		Database: DatabaseConfig{
			Driver:          psqlbuilder.DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "kinetic_booking",
			SSLMode:         "disable",
			Path:            "kinetic-booking.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "kinetic_booking",
		},
		Booking: BookingConfig{
			ClosedWeekday: domain.DefaultClosedWeekday.String(),
			Timezone:      "UTC",
			StoreTimeout:  int(domain.DefaultStoreTimeout / time.Second),
		},
		Mailer: MailerConfig{
			Timeout: int(domain.DefaultMailerTimeout / time.Second),
		},
		Email: EmailConfig{
			Provider: ProviderLog,
			From:     "Kinetic Displays <bookings@kinetic.example>",
			Subject:  "Your booking is confirmed",
			BusinessAddress: []string{
				"Kinetic Display Studio",
				"1200 Harbor Blvd, Suite 4",
				"San Francisco, CA 94107",
			},
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 20,
			Burst:             5,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvResendAPIKey); v != "" {
		c.Email.APIKey = v
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		c.Database.Password = v
	}
}

// Validate проверяет диапазоны значений
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}

	switch c.Database.Driver {
	case psqlbuilder.DriverPostgres, psqlbuilder.DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported", c.Database.Driver))
	}

	if c.Booking.Year != 0 || c.Booking.Month != 0 {
		if _, err := domain.NewBookingPeriod(c.Booking.Year, c.Booking.Month); err != nil {
			problems = append(problems, "booking: "+err.Error())
		}
	}
	if _, err := c.Booking.Weekday(); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, err.Error())
	}

	switch c.Email.Provider {
	case ProviderLog:
	case ProviderResend:
		if c.Email.APIKey == "" {
			problems = append(problems, fmt.Sprintf("email.api_key is required for provider %q (or set %s)", ProviderResend, EnvResendAPIKey))
		}
	default:
		problems = append(problems, fmt.Sprintf("email.provider %q is not supported", c.Email.Provider))
	}

	if c.RateLimit.Enabled && c.RateLimit.Burst <= 0 {
		problems = append(problems, "rate_limit.burst must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// InProcess сообщает, отправляются ли подтверждения без HTTP запроса
func (m MailerConfig) InProcess() bool {
	return strings.TrimSpace(m.BaseURL) == ""
}

// DSN строка подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == psqlbuilder.DriverSQLite {
		return d.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Period период бронирования; нулевые год или месяц берутся из now
func (b BookingConfig) Period(now time.Time) (domain.BookingPeriod, error) {
	year, month := b.Year, b.Month
	if year == 0 || month == 0 {
		year, month = now.Year(), int(now.Month())
	}
	return domain.NewBookingPeriod(year, month)
}

// Weekday парсит ClosedWeekday ("Sunday", без учета регистра)
func (b BookingConfig) Weekday() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(b.ClosedWeekday)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("booking.closed_weekday %q is not a weekday", b.ClosedWeekday)
}

func (b BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("booking.timezone %q: %v", b.Timezone, err)
	}
	return loc, nil
}

func (b BookingConfig) StoreTimeoutDuration() time.Duration {
	return time.Duration(b.StoreTimeout) * time.Second
}

func (m MailerConfig) TimeoutDuration() time.Duration {
	return time.Duration(m.Timeout) * time.Second
}
