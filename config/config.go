package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Timesheet assistant specifics
	GoogleCalendar GoogleCalendarConfig
	Gemini         GeminiConfig
	Salesforce     SalesforceConfig
	SendGrid       SendGridConfig

	// Conversation handling
	Session   SessionConfig
	RateLimit RateLimitConfig
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

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type SalesforceConfig struct {
	InstanceURL string
	AccessToken string
	Username    string
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type SessionConfig struct {
	Capacity int
}

type RateLimitConfig struct {
	ChatPerMinute int
	ChatBurst     int
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Salesforce
	cfg.Salesforce.InstanceURL = viper.GetString("salesforce.instance_url")
	cfg.Salesforce.AccessToken = viper.GetString("salesforce.access_token")
	cfg.Salesforce.Username = viper.GetString("salesforce.username")
	if sfURL := viper.GetString("salesforce_instance_url"); sfURL != "" {
		cfg.Salesforce.InstanceURL = sfURL
	}
	if sfToken := viper.GetString("salesforce_access_token"); sfToken != "" {
		cfg.Salesforce.AccessToken = sfToken
	}

	// SendGrid
	cfg.SendGrid.APIKey = viper.GetString("sendgrid.api_key")
	cfg.SendGrid.FromEmail = viper.GetString("sendgrid.from_email")
	cfg.SendGrid.FromName = viper.GetString("sendgrid.from_name")
	if sgKey := viper.GetString("sendgrid_api_key"); sgKey != "" {
		cfg.SendGrid.APIKey = sgKey
	}

	// Conversation handling
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.RateLimit.ChatPerMinute = viper.GetInt("rate_limit.chat_per_minute")
	cfg.RateLimit.ChatBurst = viper.GetInt("rate_limit.chat_burst")

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
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("sendgrid.from_email", "timesheets@example.com")
	viper.SetDefault("sendgrid.from_name", "Timesheet Assistant")
	viper.SetDefault("session.capacity", 1024)
	viper.SetDefault("rate_limit.chat_per_minute", 30)
	viper.SetDefault("rate_limit.chat_burst", 5)
}
