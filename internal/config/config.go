package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Session SessionConfig `mapstructure:"session"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port string    `mapstructure:"port"`
	TLS  TLSConfig `mapstructure:"tls"`
}

// TLSConfig holds TLS-specific configuration.
type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
}

// DBConfig holds database-specific configuration.
type DBConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite3" or "mysql"
	DSN    string `mapstructure:"dsn"`
}

// SessionConfig holds session cookie configuration.
type SessionConfig struct {
	Lifetime   int    `mapstructure:"lifetime"` // hours
	CookieName string `mapstructure:"cookie_name"`
}

// CacheConfig holds the rendered-content cache configuration.
type CacheConfig struct {
	FilePath   string `mapstructure:"file_path"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // e.g., "json", "console"
}

// UIConfig holds dashboard behaviour settings.
type UIConfig struct {
	PageSize        int    `mapstructure:"page_size"`
	RedirectDelayMS int    `mapstructure:"redirect_delay_ms"`
	MaxUploadMB     int    `mapstructure:"max_upload_mb"`
	DefaultUserName string `mapstructure:"default_user_name"`
	DefaultAvatar   string `mapstructure:"default_avatar"`
}

// Defaults returns a Config populated with the built-in default values.
// It is used by tests and as the base for LoadConfig.
func Defaults() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		DB:      DBConfig{Driver: "sqlite3", DSN: "dashboard.db"},
		Session: SessionConfig{Lifetime: 24, CookieName: "dashboard_session"},
		Cache:   CacheConfig{FilePath: "cache.db", TTLMinutes: 60},
		Log:     LogConfig{Level: "info", Format: "console"},
		UI: UIConfig{
			PageSize:        5,
			RedirectDelayMS: 1000,
			MaxUploadMB:     5,
			DefaultUserName: "Asep Jamaludin",
			DefaultAvatar:   "/static/default-avatar.svg",
		},
	}
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set default values
	d := Defaults()
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.tls.enabled", false)
	v.SetDefault("db.driver", d.DB.Driver)
	v.SetDefault("db.dsn", d.DB.DSN)
	v.SetDefault("session.lifetime", d.Session.Lifetime)
	v.SetDefault("session.cookie_name", d.Session.CookieName)
	v.SetDefault("cache.file_path", d.Cache.FilePath)
	v.SetDefault("cache.ttl_minutes", d.Cache.TTLMinutes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("ui.page_size", d.UI.PageSize)
	v.SetDefault("ui.redirect_delay_ms", d.UI.RedirectDelayMS)
	v.SetDefault("ui.max_upload_mb", d.UI.MaxUploadMB)
	v.SetDefault("ui.default_user_name", d.UI.DefaultUserName)
	v.SetDefault("ui.default_avatar", d.UI.DefaultAvatar)

	// Set up viper to read from config file
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/go-admin-dashboard/")
	v.AddConfigPath("$HOME/.go-admin-dashboard")

	// Attempt to read the config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	// Set up viper to read from environment variables
	v.SetEnvPrefix("DASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.UI.PageSize <= 0 {
		cfg.UI.PageSize = d.UI.PageSize
	}

	return &cfg, nil
}
