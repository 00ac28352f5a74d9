package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	Secret       string
	TokenTTLHrs  int
	CookieSecure bool
}

type CORSConfig struct {
	FrontendOrigin string
}

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Redis       RedisConfig
	Auth        AuthConfig
	CORS        CORSConfig
	Pagination  PaginationConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			Secret:       v.GetString("JWT_SECRET"),
			TokenTTLHrs:  v.GetInt("JWT_TTL_HOURS"),
			CookieSecure: v.GetBool("COOKIE_SECURE"),
		},
		CORS: CORSConfig{
			FrontendOrigin: v.GetString("FRONTEND_URL"),
		},
		Pagination: PaginationConfig{
			DefaultPageSize: v.GetInt("PAGE_SIZE_DEFAULT"),
			MaxPageSize:     v.GetInt("PAGE_SIZE_MAX"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 3000
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Auth.TokenTTLHrs <= 0 {
		cfg.Auth.TokenTTLHrs = 24
	}
	if cfg.CORS.FrontendOrigin == "" {
		cfg.CORS.FrontendOrigin = "http://localhost:5173"
	}
	if cfg.Pagination.DefaultPageSize <= 0 {
		cfg.Pagination.DefaultPageSize = 10
	}
	if cfg.Pagination.MaxPageSize <= 0 {
		cfg.Pagination.MaxPageSize = 100
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// IsDevelopment reports whether error detail may be exposed in responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
