package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration (avatar storage)
	MongoDB MongoDBConfig `json:"mongodb"`

	// Auth Configuration
	Auth AuthConfig `json:"auth"`

	// Notification Configuration
	Notification NotificationConfig `json:"notification"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string `json:"host" env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port         string `json:"port" env:"SERVER_PORT" envDefault:"8080"`
	GRPCPort     string `json:"grpc_port" env:"GRPC_PORT" envDefault:"7001"`
	ReadTimeout  int    `json:"read_timeout" env:"SERVER_READ_TIMEOUT" envDefault:"15"`
	WriteTimeout int    `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" envDefault:"15"`
	Environment  string `json:"environment" env:"APP_ENV" envDefault:"development"` // development, staging, production
	MediaBaseURL string `json:"media_base_url" env:"MEDIA_BASE_URL" envDefault:"http://localhost:8080/media/"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host" env:"MYSQL_HOST" envDefault:"localhost"`
	Port         string `json:"port" env:"MYSQL_PORT" envDefault:"3306"`
	Username     string `json:"username" env:"MYSQL_USERNAME" envDefault:"gatherchat"`
	Password     string `json:"password" env:"MYSQL_PASSWORD"`
	DatabaseName string `json:"database_name" env:"MYSQL_DATABASE" envDefault:"gatherchat"`
	MaxOpenConns int    `json:"max_open_conns" env:"MYSQL_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int    `json:"max_idle_conns" env:"MYSQL_MAX_IDLE_CONNS" envDefault:"5"`
}

// MongoDBConfig contains the GridFS connection used for profile images
type MongoDBConfig struct {
	Host     string `json:"host" env:"MONGO_HOST" envDefault:"localhost"`
	Port     string `json:"port" env:"MONGO_PORT" envDefault:"27017"`
	Username string `json:"username" env:"MONGO_USERNAME"`
	Password string `json:"password" env:"MONGO_PASSWORD"`
	Database string `json:"database" env:"MONGO_DATABASE" envDefault:"gatherchat"`
	Bucket   string `json:"bucket" env:"MONGO_AVATAR_BUCKET" envDefault:"avatars"`
}

// AuthConfig holds the shared secret of the hosted auth provider.
type AuthConfig struct {
	JWTSecret   string `json:"-" env:"JWT_SECRET"`
	Issuer      string `json:"issuer" env:"JWT_ISSUER"`
	AdminUserID string `json:"admin_user_id" env:"ADMIN_USER_ID" envDefault:"00000000-0000-0000-0000-000000000000"`
}

// NotificationConfig contains notification system configuration
type NotificationConfig struct {
	DefaultPageSize int  `json:"default_page_size" env:"NOTIFICATION_PAGE_SIZE" envDefault:"20"`
	MaxPageSize     int  `json:"max_page_size" env:"NOTIFICATION_MAX_PAGE_SIZE" envDefault:"100"`
	Enabled         bool `json:"enabled" env:"NOTIFICATION_ENABLED" envDefault:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level" env:"LOG_LEVEL" envDefault:"info"`         // debug, info, warn, error
	Format     string `json:"format" env:"LOG_FORMAT" envDefault:"json"`       // json, text
	OutputPath string `json:"output_path" env:"LOG_OUTPUT" envDefault:"stdout"` // stdout, stderr, or file path
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if cfg.Server.Port == "" || cfg.Server.GRPCPort == "" {
		return errors.New("SERVER_PORT and GRPC_PORT must not be empty")
	}
	if cfg.Notification.DefaultPageSize <= 0 || cfg.Notification.MaxPageSize < cfg.Notification.DefaultPageSize {
		return fmt.Errorf("invalid notification page sizes: default=%d max=%d",
			cfg.Notification.DefaultPageSize, cfg.Notification.MaxPageSize)
	}
	return nil
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}
