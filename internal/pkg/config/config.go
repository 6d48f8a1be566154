package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"cinema-scheduler/internal/domain/roomevent"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, opening hours, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// ScheduleConfig is read once at startup and never changes afterwards.
type ScheduleConfig struct {
	OpeningTime         string        `envconfig:"SCHEDULE_OPENING_TIME" default:"08:00"`
	ClosingTime         string        `envconfig:"SCHEDULE_CLOSING_TIME" default:"22:00"`
	PremiereFrom        string        `envconfig:"SCHEDULE_PREMIERE_FROM" default:"17:00"`
	PremiereTo          string        `envconfig:"SCHEDULE_PREMIERE_TO" default:"21:00"`
	DefaultCleaningSlot time.Duration `envconfig:"SCHEDULE_DEFAULT_CLEANING_SLOT" default:"15m"`
	RollbackOnFailure   bool          `envconfig:"SCHEDULE_ROLLBACK_ON_FAILURE" default:"false"`
	TimeZone            string        `envconfig:"SCHEDULE_TIMEZONE" default:"UTC"`
}

func (c ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("SCHEDULE_TIMEZONE: %w", err)
	}
	return loc, nil
}

func (c ScheduleConfig) WorkingHours() (roomevent.WorkingHours, error) {
	var (
		hours roomevent.WorkingHours
		err   error
	)
	if hours.Opening.From, err = roomevent.ParseTimeOfDay(c.OpeningTime); err != nil {
		return roomevent.WorkingHours{}, fmt.Errorf("SCHEDULE_OPENING_TIME: %w", err)
	}
	if hours.Opening.To, err = roomevent.ParseTimeOfDay(c.ClosingTime); err != nil {
		return roomevent.WorkingHours{}, fmt.Errorf("SCHEDULE_CLOSING_TIME: %w", err)
	}
	if hours.Premiere.From, err = roomevent.ParseTimeOfDay(c.PremiereFrom); err != nil {
		return roomevent.WorkingHours{}, fmt.Errorf("SCHEDULE_PREMIERE_FROM: %w", err)
	}
	if hours.Premiere.To, err = roomevent.ParseTimeOfDay(c.PremiereTo); err != nil {
		return roomevent.WorkingHours{}, fmt.Errorf("SCHEDULE_PREMIERE_TO: %w", err)
	}

	if !hours.Opening.From.Before(hours.Opening.To) {
		return roomevent.WorkingHours{}, fmt.Errorf("opening time %s must be before closing time %s", hours.Opening.From, hours.Opening.To)
	}
	if !hours.Premiere.From.Before(hours.Premiere.To) {
		return roomevent.WorkingHours{}, fmt.Errorf("premiere window %s-%s is empty", hours.Premiere.From, hours.Premiere.To)
	}
	if hours.Location, err = c.Location(); err != nil {
		return roomevent.WorkingHours{}, err
	}
	return hours, nil
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	if _, err := cfg.Schedule.WorkingHours(); err != nil {
		return Config{}, fmt.Errorf("invalid schedule config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Schedule: ScheduleConfig{
			OpeningTime:         "08:00",
			ClosingTime:         "22:00",
			PremiereFrom:        "17:00",
			PremiereTo:          "21:00",
			DefaultCleaningSlot: 15 * time.Minute,
			RollbackOnFailure:   false,
			TimeZone:            "UTC",
		},
	}
}
