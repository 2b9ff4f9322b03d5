// Package config loads Bloom settings from defaults, an optional YAML file,
// .env files and BLOOM_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

// EnvPrefix prefixes every environment variable (BLOOM_DB_PATH, ...).
const EnvPrefix = "BLOOM"

// Config is the full application configuration.
type Config struct {
	DBPath     string         `mapstructure:"db_path"`
	Port       int            `mapstructure:"port"`
	StaticPath string         `mapstructure:"static_path"`
	LogLevel   string         `mapstructure:"log_level"`
	Report     ReportConfig   `mapstructure:"report"`
	Admin      AdminConfig    `mapstructure:"admin"`
	Rosters    models.Rosters `mapstructure:"rosters"`
}

// ReportConfig controls the rendered report.
type ReportConfig struct {
	Title string `mapstructure:"title"`
}

// AdminConfig configures roster editing over the API.
type AdminConfig struct {
	Name         string        `mapstructure:"name"`
	PasswordHash string        `mapstructure:"password_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

// Admin returns the configured admin account.
func (c AdminConfig) Admin() models.Admin {
	return models.Admin{Name: c.Name, PasswordHash: c.PasswordHash}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", "./data/presence.db")
	v.SetDefault("port", 8080)
	v.SetDefault("static_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("report.title", "Liste de présence de Bloom")
	v.SetDefault("admin.name", "coach")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.token_ttl", 12*time.Hour)
	v.SetDefault("rosters.filles", DefaultRosters.Girls)
	v.SetDefault("rosters.garcons", DefaultRosters.Boys)
	v.SetDefault("rosters.coachs", DefaultRosters.Coaches)
}

// Load reads the configuration. configFile may be empty, in which case
// BLOOM_CONFIG, then ./bloom.yaml, are tried; a missing default file is not
// an error.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// LOG_LEVEL is shared with pkg/logging; BLOOM_LOG_LEVEL wins when both are set.
	if err := v.BindEnv("log_level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level: %w", err)
	}

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("bloom")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Admin.PasswordHash != "" && c.Admin.JWTSecret == "" {
		return errors.New("admin.jwt_secret is required when admin.password_hash is set")
	}
	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("admin.token_ttl must be positive, got %s", c.Admin.TokenTTL)
	}
	return nil
}

// loadEnvFiles loads .env.local then .env; variables already set win.
func loadEnvFiles() {
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}
