package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"logLevel"`
	SecretKey   string `mapstructure:"secretKey"`
	Server      struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		PostgresDSN         string `mapstructure:"postgresDSN"`
		PostgresAutoMigrate bool   `mapstructure:"postgresAutoMigrate"`
	} `mapstructure:"database"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
	// Channels carries per-platform credentials. They are consumed by the
	// ingestion and outbound collaborators, not by the read API itself.
	Channels struct {
		WhatsApp struct {
			WebhookVerifyToken string `mapstructure:"webhookVerifyToken"`
			AccessToken        string `mapstructure:"accessToken"`
			PhoneNumberID      string `mapstructure:"phoneNumberId"`
		} `mapstructure:"whatsapp"`
		Instagram struct {
			AccessToken string `mapstructure:"accessToken"`
		} `mapstructure:"instagram"`
		Facebook struct {
			AccessToken string `mapstructure:"accessToken"`
			AppSecret   string `mapstructure:"appSecret"`
		} `mapstructure:"facebook"`
	} `mapstructure:"channels"`
	// Debounce and SLA knobs belong to the timer engine collaborator.
	Debounce struct {
		DefaultSeconds    int `mapstructure:"defaultSeconds"`
		MaxSeconds        int `mapstructure:"maxSeconds"`
		AdaptiveIncrement int `mapstructure:"adaptiveIncrement"`
	} `mapstructure:"debounce"`
	SLA struct {
		AckDeadlineSeconds    int `mapstructure:"ackDeadlineSeconds"`
		UrgentResponseSeconds int `mapstructure:"urgentResponseSeconds"`
	} `mapstructure:"sla"`
}

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("environment", "development")
	v.SetDefault("logLevel", "info")
	v.SetDefault("server.port", 8080)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("database.postgresAutoMigrate", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("debounce.defaultSeconds", 8)
	v.SetDefault("debounce.maxSeconds", 15)
	v.SetDefault("debounce.adaptiveIncrement", 2)
	v.SetDefault("sla.ackDeadlineSeconds", 20)
	v.SetDefault("sla.urgentResponseSeconds", 300)

	// Config file settings
	v.SetConfigName("default")
	v.SetConfigType("yaml")

	// Add lookup paths
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath("$HOME/.daisi-supportdesk")
	v.AddConfigPath("/etc/daisi-supportdesk")

	// Try to read from config file
	if err := v.ReadInConfig(); err != nil {
		// It's ok if config file is not found, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map environment variables to config fields
	bindEnvs(v, Config{})

	// Read directly from ENV for critical values
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		v.Set("database.postgresDSN", dsn)
	}
	if lgLevel := os.Getenv("LOG_LEVEL"); lgLevel != "" {
		v.Set("logLevel", lgLevel)
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		v.Set("redis.addr", addr)
	}
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		v.Set("secretKey", secret)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return &config, nil
}

// bindEnvs recursively binds environment variables to config struct fields
func bindEnvs(v *viper.Viper, cfg interface{}, parts ...string) {
	ifv := reflect.ValueOf(cfg)
	ift := reflect.TypeOf(cfg)
	for i := 0; i < ift.NumField(); i++ {
		fieldVal := ifv.Field(i)
		fieldType := ift.Field(i)

		tag := fieldType.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}

		path := append(parts, tag)
		key := strings.Join(path, ".")

		if fieldType.Type.Kind() == reflect.Struct {
			bindEnvs(v, fieldVal.Interface(), path...)
			continue
		}

		_ = v.BindEnv(key)
	}
}
