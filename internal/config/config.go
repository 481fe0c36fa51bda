package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Database             DatabaseConfig   `json:"db"`
	JWTSecret            string           `json:"jwt_secret"`
	Port                 int              `json:"port"`
	JWTTTLHours          int              `json:"jwt_ttl_hours"`
	LogConfig            logger.LogConfig `json:"log_config"`
	CORSAllowlist        []string         `json:"cors_allowlist"`
	LoginThrottleSeconds int              `json:"login_throttle_seconds"`
}

type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
	DSN      string `json:"dsn"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	// The server must not start without a signing secret.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.Database.DSN == "" {
		if cfg.Database.Host == "" || cfg.Database.User == "" || cfg.Database.DBName == "" {
			return nil, fmt.Errorf("db.dsn or db.host/db.user/db.dbname are required")
		}
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 1
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.LoginThrottleSeconds == 0 {
		cfg.LoginThrottleSeconds = 1
	}
	return &cfg, nil
}
