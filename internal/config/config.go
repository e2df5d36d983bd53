package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/tareas/task-lifecycle-api/internal/constants"
)

type Config struct {
	Port      string `mapstructure:"port" validate:"required,numeric"`
	GinMode   string `mapstructure:"gin_mode" validate:"oneof=debug release test"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=json text"`

	DBDriver   string `mapstructure:"db_driver" validate:"oneof=postgres mysql sqlite"`
	DBHost     string `mapstructure:"db_host" validate:"required_unless=DBDriver sqlite"`
	DBPort     string `mapstructure:"db_port" validate:"required_unless=DBDriver sqlite"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name" validate:"required_unless=DBDriver sqlite"`
	DBSSLMode  string `mapstructure:"db_sslmode"`
	SQLitePath string `mapstructure:"sqlite_path"`

	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl" validate:"gt=0"`
	JWTIssuer string        `mapstructure:"jwt_issuer" validate:"required"`

	SessionSecret string `mapstructure:"session_secret" validate:"required"`
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`

	FrontendURL string `mapstructure:"frontend_url"`

	AdminEmail    string `mapstructure:"admin_email" validate:"omitempty,email"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

var defaults = map[string]any{
	"port":             "3000",
	"gin_mode":         "debug",
	"log_level":        "info",
	"log_format":       "json",
	"db_driver":        "postgres",
	"db_host":          "localhost",
	"db_port":          "5432",
	"db_user":          "taskuser",
	"db_password":      "taskpassword",
	"db_name":          "task_management",
	"db_sslmode":       "disable",
	"sqlite_path":      "tasks.db",
	"jwt_secret":       "",
	"jwt_ttl":          constants.DefaultTokenTTL,
	"jwt_issuer":       "task-lifecycle-api",
	"session_secret":   "default-secret-key-change-me",
	"redis_host":       "",
	"redis_port":       "6379",
	"frontend_url":     "http://localhost:5173",
	"admin_email":      "",
	"admin_username":   "",
	"admin_password":   "",
	"shutdown_timeout": "30s",
}

var validate = validator.New()

// Load reads configuration from the environment and, when CONFIG_FILE is set,
// from that file. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// AdminSeedConfigured reports whether all admin seed variables are present.
func (c *Config) AdminSeedConfigured() bool {
	return c.AdminEmail != "" && c.AdminUsername != "" && c.AdminPassword != ""
}

// UseRedisSessions reports whether sessions should be kept in Redis instead of cookies.
func (c *Config) UseRedisSessions() bool {
	return c.RedisHost != ""
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
