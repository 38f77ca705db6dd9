package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
driver = "sqlite3"
path = "/tmp/bookings.db"

[booking]
year = 2026
month = 1
closed_weekday = "monday"
timezone = "America/New_York"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ShutdownTimeout, "default kept")
	assert.Equal(t, "/tmp/bookings.db", cfg.Database.DSN())
	assert.Equal(t, ProviderLog, cfg.Email.Provider)
	assert.Equal(t, 15*time.Second, cfg.Booking.StoreTimeoutDuration())
	assert.Equal(t, 15*time.Second, cfg.Mailer.TimeoutDuration())

	period, err := cfg.Booking.Period(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2026, period.Year)
	assert.Equal(t, time.January, period.Month)

	wd, err := cfg.Booking.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoad_EnvSecrets(t *testing.T) {
	t.Setenv(EnvResendAPIKey, "re_from_env")
	t.Setenv(EnvDatabasePassword, "s3cret")

	path := writeConfig(t, `
[email]
provider = "resend"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "re_from_env", cfg.Email.APIKey)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
	assert.Contains(t, cfg.Database.DSN(), "dbname=kinetic_booking")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "[database]\ndriver = \"mysql\"\n"},
		{"bad month", "[booking]\nyear = 2026\nmonth = 13\n"},
		{"bad weekday", "[booking]\nclosed_weekday = \"Funday\"\n"},
		{"bad timezone", "[booking]\ntimezone = \"Mars/Olympus\"\n"},
		{"resend without key", "[email]\nprovider = \"resend\"\n"},
		{"unknown provider", "[email]\nprovider = \"smtp\"\n"},
		{"bad port", "[server]\nhttp_port = 70000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvResendAPIKey, "")

			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestBookingConfig_PeriodDefaultsToCurrentMonth(t *testing.T) {
	period, err := BookingConfig{}.Period(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2026, period.Year)
	assert.Equal(t, time.March, period.Month)
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)

	// поставляемый конфиг берет текущий месяц, а не фиксированный
	assert.Zero(t, cfg.Booking.Year)
	assert.Zero(t, cfg.Booking.Month)

	now := time.Date(2027, time.August, 3, 12, 0, 0, 0, time.UTC)
	period, err := cfg.Booking.Period(now)
	require.NoError(t, err)
	assert.Equal(t, 2027, period.Year)
	assert.Equal(t, time.August, period.Month)

	assert.True(t, cfg.Mailer.InProcess())
	assert.Empty(t, cfg.RateLimit.TrustedProxies)
}

func TestMailerConfig_InProcess(t *testing.T) {
	assert.True(t, MailerConfig{}.InProcess())
	assert.True(t, MailerConfig{BaseURL: "  "}.InProcess())
	assert.False(t, MailerConfig{BaseURL: "https://mailer.internal"}.InProcess())
}
