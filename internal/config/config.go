package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	BaseURL     string `mapstructure:"BASE_URL"`

	// DynamoDB configuration
	AWSRegion        string `mapstructure:"AWS_REGION"`
	DynamoDBTable    string `mapstructure:"DYNAMODB_TABLE"`
	DynamoDBEndpoint string `mapstructure:"DYNAMODB_ENDPOINT"`
	AWSAccessKeyID   string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey     string `mapstructure:"AWS_SECRET_ACCESS_KEY"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// SMTP configuration for invitation emails
	SMTPHostPort string `mapstructure:"SMTP_HOST_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	SMTPTLS      bool   `mapstructure:"SMTP_TLS"`

	// Invitation policy
	InviteTTLHours int `mapstructure:"INVITE_TTL_HOURS"`

	// AI lesson-plan generation
	AIAPIURL       string `mapstructure:"AI_API_URL"`
	AIOAuthURL     string `mapstructure:"AI_OAUTH_URL"`
	AIClientID     string `mapstructure:"AI_CLIENT_ID"`
	AIClientSecret string `mapstructure:"AI_CLIENT_SECRET"`
	AIModel        string `mapstructure:"AI_MODEL"`

	// Market data provider
	MarketDataURL      string `mapstructure:"MARKET_DATA_URL"`
	MarketDataAPIKey   string `mapstructure:"MARKET_DATA_API_KEY"`
	MarketStatsTTLMins int    `mapstructure:"MARKET_STATS_TTL_MINUTES"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BASE_URL", "http://localhost:3000")

	// DynamoDB defaults; the endpoint override targets a local instance
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("DYNAMODB_TABLE", "agenthub")
	viper.SetDefault("DYNAMODB_ENDPOINT", "")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// SMTP defaults
	viper.SetDefault("SMTP_HOST_PORT", "localhost:1025")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "noreply@agenthub.example.com")
	viper.SetDefault("SMTP_TLS", false)

	// Invitations expire after seven days unless configured otherwise
	viper.SetDefault("INVITE_TTL_HOURS", 168)

	// AI defaults
	viper.SetDefault("AI_API_URL", "")
	viper.SetDefault("AI_OAUTH_URL", "")
	viper.SetDefault("AI_CLIENT_ID", "")
	viper.SetDefault("AI_CLIENT_SECRET", "")
	viper.SetDefault("AI_MODEL", "gpt-4o")

	// Market data defaults
	viper.SetDefault("MARKET_DATA_URL", "")
	viper.SetDefault("MARKET_DATA_API_KEY", "")
	viper.SetDefault("MARKET_STATS_TTL_MINUTES", 60)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DynamoDBTable == "" {
		return fmt.Errorf("DynamoDB table name is required")
	}

	if config.InviteTTLHours <= 0 {
		return fmt.Errorf("INVITE_TTL_HOURS must be positive")
	}

	return nil
}

// InviteTTL returns the invitation expiry offset as a duration
func (c *Config) InviteTTL() time.Duration {
	return time.Duration(c.InviteTTLHours) * time.Hour
}

// MarketStatsTTL returns the market stats cache lifetime as a duration
func (c *Config) MarketStatsTTL() time.Duration {
	return time.Duration(c.MarketStatsTTLMins) * time.Minute
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
