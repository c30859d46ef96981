// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/ncinga/temi-event-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// DefaultExportRecipient is the reference deployment's export inbox. The
// EXPORT_RECIPIENT environment variable overrides it.
const DefaultExportRecipient = "himesha.fernando@ncinga.net"

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
}

// MongoConfig holds the document store connection details.
type MongoConfig struct {
	URI      string `mapstructure:"URI"`
	Database string `mapstructure:"DATABASE"`
}

// SMTPConfig holds outbound-mail transport configuration. Host, user and
// password are intentionally not validated at load time: the export-by-email
// path checks them before dialing so the rest of the service runs without a
// mail setup.
type SMTPConfig struct {
	Host     string `mapstructure:"HOST"`
	Port     int    `mapstructure:"PORT"`
	User     string `mapstructure:"USER"`
	Password string `mapstructure:"PASSWORD"`
	FromName string `mapstructure:"FROM_NAME"`
}

// ExportConfig holds export behavior settings.
type ExportConfig struct {
	Recipient string `mapstructure:"RECIPIENT"`
	MaxRows   int64  `mapstructure:"MAX_ROWS"`
}

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig `mapstructure:"SERVER"`
	Mongo        MongoConfig  `mapstructure:"MONGO"`
	SMTP         SMTPConfig   `mapstructure:"SMTP"`
	Export       ExportConfig `mapstructure:"EXPORT"`
	VisitorsFile string       `mapstructure:"VISITORS_FILE"`
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// applies defaults, unmarshals into Config and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "1.0.0")
	v.SetDefault("MONGO.URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO.DATABASE", "temi_event")
	v.SetDefault("SMTP.PORT", 587)
	v.SetDefault("SMTP.FROM_NAME", "NCINGA Bot")
	v.SetDefault("EXPORT.RECIPIENT", DefaultExportRecipient)
	v.SetDefault("EXPORT.MAX_ROWS", 100000)
	v.SetDefault("VISITORS_FILE", "visitors.json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"MONGO.URI", "MONGO_URI"},
		{"MONGO.DATABASE", "MONGO_DB"},
		{"SMTP.HOST", "SMTP_HOST"},
		{"SMTP.PORT", "SMTP_PORT"},
		{"SMTP.USER", "SMTP_USER"},
		{"SMTP.PASSWORD", "SMTP_PASS"},
		{"SMTP.FROM_NAME", "SMTP_FROM_NAME"},
		{"EXPORT.RECIPIENT", "EXPORT_RECIPIENT"},
		{"EXPORT.MAX_ROWS", "EXPORT_MAX_ROWS"},
		{"VISITORS_FILE", "VISITORS_FILE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"mongo_db", cfg.Mongo.Database,
		"export_recipient", cfg.Export.Recipient,
		"export_max_rows", cfg.Export.MaxRows,
	)
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}
	if cfg.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}
	if cfg.Export.Recipient == "" {
		return fmt.Errorf("export recipient is required")
	}
	if cfg.Export.MaxRows <= 0 {
		return fmt.Errorf("export max rows must be positive")
	}
	if cfg.Server.Environment != EnvDevelopment && cfg.Server.Environment != EnvProduction {
		return fmt.Errorf("unknown environment %q", cfg.Server.Environment)
	}
	return nil
}
