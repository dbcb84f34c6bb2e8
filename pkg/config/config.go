package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/just-nibble/git-dashboard/pkg/errcodes"
)

const EnvPrefix = "DASHBOARD"

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type HTTPConfig struct {
	Addr       string `mapstructure:"addr"`
	UserHeader string `mapstructure:"user_header"`
	SignInURL  string `mapstructure:"sign_in_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type GitHubConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// DefaultTokenCacheTTL bounds how long a token re-issued by another process can be
// shadowed by a cached copy. Zero disables the cache.
const DefaultTokenCacheTTL = 10 * time.Second

type TokenStoreConfig struct {
	Driver   string        `mapstructure:"driver"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// DSN renders the connection string for the postgres driver
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// SeedConfig stores one user's token at startup, for local development
type SeedConfig struct {
	UserID      string `mapstructure:"user_id"`
	GitHubToken string `mapstructure:"github_token"`
}

type Config struct {
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	GitHub     GitHubConfig     `mapstructure:"github"`
	TokenStore TokenStoreConfig `mapstructure:"token_store"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Seed       SeedConfig       `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.user_header", "X-Forwarded-User")
	v.SetDefault("http.sign_in_url", "/oauth2/start")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("github.base_url", "https://api.github.com/")
	v.SetDefault("github.user_agent", "git-dashboard")
	v.SetDefault("github.timeout", 10*time.Second)
	v.SetDefault("token_store.driver", DriverPostgres)
	v.SetDefault("token_store.cache_ttl", DefaultTokenCacheTTL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "git_dashboard")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "git-dashboard")
	v.SetDefault("seed.user_id", "")
	v.SetDefault("seed.github_token", "")
}

// Load reads defaults, then the optional file at path, then DASHBOARD_* environment variables.
// Nested keys map to env names with dots replaced by underscores (DASHBOARD_HTTP_ADDR).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
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

func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.HTTP),
		validation.Field(&c.Log),
		validation.Field(&c.GitHub),
		validation.Field(&c.TokenStore),
	)
	if err == nil {
		switch c.TokenStore.Driver {
		case DriverPostgres:
			err = c.Database.Validate()
		case DriverRedis:
			err = c.Redis.Validate()
		}
	}
	if err == nil && (c.Seed.UserID == "") != (c.Seed.GitHubToken == "") {
		err = errors.New("seed.user_id and seed.github_token must be set together")
	}

	if err != nil {
		return fmt.Errorf("%w: %w", errcodes.ErrInvalidConfig, err)
	}
	return nil
}

func (h HTTPConfig) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Addr, validation.Required),
		validation.Field(&h.UserHeader, validation.Required),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled")),
	)
}

func (g GitHubConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.BaseURL, validation.Required),
		validation.Field(&g.UserAgent, validation.Required),
		validation.Field(&g.Timeout, validation.Min(time.Duration(0))),
	)
}

func (t TokenStoreConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Driver, validation.Required, validation.In(DriverPostgres, DriverRedis)),
		validation.Field(&t.CacheTTL, validation.Min(time.Duration(0))),
	)
}

func (d DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Host, validation.Required),
		validation.Field(&d.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&d.User, validation.Required),
		validation.Field(&d.Name, validation.Required),
	)
}

func (r RedisConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Addr, validation.Required),
		validation.Field(&r.DB, validation.Min(0)),
	)
}
