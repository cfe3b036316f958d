package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsDebug reports whether gin runs in debug mode.
func (s *ServerConfig) IsDebug() bool {
	return s.Mode == "debug"
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type SessionConfig struct {
	ExpHours int `mapstructure:"exp_hours"`
}

func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.ExpHours) * time.Hour
}

// RateLimitConfig caps attempts per client IP. Zero disables a window.
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	PerHour   int `mapstructure:"per_hour"`
}

type AuthConfig struct {
	BcryptCost int             `mapstructure:"bcrypt_cost"`
	JWT        JWTConfig       `mapstructure:"jwt"`
	Session    SessionConfig   `mapstructure:"session"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SendgridConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type EmailConfig struct {
	// Provider is one of smtp, sendgrid or none.
	Provider    string         `mapstructure:"provider"`
	FromAddress string         `mapstructure:"from_address"`
	FromName    string         `mapstructure:"from_name"`
	SMTP        SMTPConfig     `mapstructure:"smtp"`
	Sendgrid    SendgridConfig `mapstructure:"sendgrid"`
}

type RedisConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	SessionCacheTTL int    `mapstructure:"session_cache_ttl_seconds"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type BrokerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Queue   string `mapstructure:"queue"`
}

type StorageConfig struct {
	Root        string `mapstructure:"root"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}

type PermissionConfig struct {
	// Persist stores the permission matrix in casbin_rule through the gorm adapter.
	Persist bool `mapstructure:"persist"`
}
