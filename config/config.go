package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig

	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

// SchedulerConfig tunes the scheduling algorithms.
type SchedulerConfig struct {
	Timezone               string
	DefaultDurationMinutes int
	WorkdayStartHour       int
	WorkdayEndHour         int
	SlotStepMinutes        int
	SuggestWindowDays      int
	MaxSuggestions         int
	HorizonDays            int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.DefaultDurationMinutes = viper.GetInt("scheduler.default_duration_minutes")
	cfg.Scheduler.WorkdayStartHour = viper.GetInt("scheduler.workday_start_hour")
	cfg.Scheduler.WorkdayEndHour = viper.GetInt("scheduler.workday_end_hour")
	cfg.Scheduler.SlotStepMinutes = viper.GetInt("scheduler.slot_step_minutes")
	cfg.Scheduler.SuggestWindowDays = viper.GetInt("scheduler.suggest_window_days")
	cfg.Scheduler.MaxSuggestions = viper.GetInt("scheduler.max_suggestions")
	cfg.Scheduler.HorizonDays = viper.GetInt("scheduler.horizon_days")

	if cfg.Scheduler.WorkdayEndHour <= cfg.Scheduler.WorkdayStartHour {
		return nil, fmt.Errorf("scheduler.workday_end_hour must be after scheduler.workday_start_hour")
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "data/tasks.db")

	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("scheduler.default_duration_minutes", 60)
	viper.SetDefault("scheduler.workday_start_hour", 9)
	viper.SetDefault("scheduler.workday_end_hour", 17)
	viper.SetDefault("scheduler.slot_step_minutes", 30)
	viper.SetDefault("scheduler.suggest_window_days", 7)
	viper.SetDefault("scheduler.max_suggestions", 3)
	viper.SetDefault("scheduler.horizon_days", 365)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 10.0)
	viper.SetDefault("rate_limit.burst", 20)
}
