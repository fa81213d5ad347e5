package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Birthday sync
	GoogleCalendar GoogleCalendarConfig
	Roster         RosterConfig
	Sync           SyncConfig
	Calendars      []CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port   int
	Mode   string
	APIKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath   string
	TokenPath         string
	TokenStore        string // "file" or "keyring"
	RequestsPerSecond float64
}

type RosterConfig struct {
	Path string // .json, .yaml/.yml or .vcf
}

type SyncConfig struct {
	Parallelism int
	Verify      bool
	Prune       bool
	Timezone    string
	Location    *time.Location // resolved from Timezone
	Schedule    string
	RunOnStart  bool
}

// CalendarConfig is one calendar to keep in sync.
type CalendarConfig struct {
	Name      string // display name, "primary" or a calendar id
	LookAhead int    // birthdays per person, 0 means the default
	Roster    string // overrides roster.path for this calendar
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/birthday-sync/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/birthday-sync/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = v.GetString("http_server.api_key")
	if apiKey := v.GetString("api_key"); apiKey != "" {
		cfg.HTTPServer.APIKey = apiKey
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.TokenStore = v.GetString("google_calendar.token_store")
	cfg.GoogleCalendar.RequestsPerSecond = v.GetFloat64("google_calendar.requests_per_second")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Roster
	cfg.Roster.Path = v.GetString("roster.path")
	if rosterPath := v.GetString("roster_path"); rosterPath != "" {
		cfg.Roster.Path = rosterPath
	}

	// Sync
	cfg.Sync.Parallelism = v.GetInt("sync.parallelism")
	cfg.Sync.Verify = v.GetBool("sync.verify")
	cfg.Sync.Prune = v.GetBool("sync.prune")
	cfg.Sync.Timezone = v.GetString("sync.timezone")
	cfg.Sync.Schedule = v.GetString("sync.schedule")
	cfg.Sync.RunOnStart = v.GetBool("sync.run_on_start")

	cfg.Calendars = parseCalendars(v.Get("calendars"))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("google_calendar.credentials_path", "credentials.json")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.token_store", "file")
	v.SetDefault("google_calendar.requests_per_second", 5)

	v.SetDefault("roster.path", "persons.json")

	v.SetDefault("sync.parallelism", 4)
	v.SetDefault("sync.verify", false)
	v.SetDefault("sync.prune", false)
	v.SetDefault("sync.timezone", "UTC")
	v.SetDefault("sync.schedule", "5 0 * * *")
	v.SetDefault("sync.run_on_start", true)
}

// parseCalendars accepts a YAML list of names or of maps, or a comma separated
// string coming from the environment.
func parseCalendars(raw interface{}) []CalendarConfig {
	var out []CalendarConfig
	switch val := raw.(type) {
	case string:
		for _, name := range strings.Split(val, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, CalendarConfig{Name: name})
			}
		}
	case []interface{}:
		for _, item := range val {
			switch c := item.(type) {
			case string:
				out = append(out, CalendarConfig{Name: strings.TrimSpace(c)})
			case map[string]interface{}:
				out = append(out, CalendarConfig{
					Name:      strings.TrimSpace(getStringFromMap(c, "name")),
					LookAhead: getIntFromMap(c, "look_ahead"),
					Roster:    getStringFromMap(c, "roster"),
				})
			}
		}
	}
	return out
}

func validate(cfg *Config) error {
	loc, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		return fmt.Errorf("sync.timezone: %w", err)
	}
	cfg.Sync.Location = loc

	if cfg.Sync.Parallelism <= 0 {
		return errors.New("sync.parallelism must be positive")
	}
	if cfg.GoogleCalendar.RequestsPerSecond < 0 {
		return errors.New("google_calendar.requests_per_second must not be negative")
	}
	switch cfg.GoogleCalendar.TokenStore {
	case "file", "keyring":
	default:
		return fmt.Errorf("google_calendar.token_store: unknown store %q", cfg.GoogleCalendar.TokenStore)
	}

	seen := make(map[string]bool)
	for i, c := range cfg.Calendars {
		if c.Name == "" {
			return fmt.Errorf("calendars[%d]: name is required", i)
		}
		if c.LookAhead < 0 {
			return fmt.Errorf("calendar %s: look_ahead must not be negative", c.Name)
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			return fmt.Errorf("calendar %s: configured twice", c.Name)
		}
		seen[key] = true
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
