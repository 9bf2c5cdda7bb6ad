package config

import (
	"fmt"
	"net"
	"net/netip"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Query     QueryConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxIdleConns int
	MaxOpenConns int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// QueryConfig bounds every backend round trip issued for a page.
type QueryConfig struct {
	Timeout        time.Duration
	DashboardCache time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
	// Forwarded-for headers are honored only from these peers.
	TrustedProxies []netip.Prefix
}

func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	v.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	v.SetDefault("QUERY_TIMEOUT", "10s")
	v.SetDefault("DASHBOARD_CACHE_TTL", "30s")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("RATE_LIMIT_TRUSTED_PROXIES", "")

	// A missing .env is fine, the environment alone may carry everything.
	_ = v.ReadInConfig()

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(v.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	queryTimeout, err := time.ParseDuration(v.GetString("QUERY_TIMEOUT"))
	if err != nil || queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}

	cacheTTL, err := time.ParseDuration(v.GetString("DASHBOARD_CACHE_TTL"))
	if err != nil || cacheTTL < 0 {
		cacheTTL = 30 * time.Second
	}

	trustedProxies, err := parsePrefixes(v.GetString("RATE_LIMIT_TRUSTED_PROXIES"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_TRUSTED_PROXIES: %w", err)
	}

	config := &Config{
		App: AppConfig{
			Port:       v.GetString("APP_PORT"),
			Env:        v.GetString("APP_ENV"),
			LogLevel:   v.GetString("LOG_LEVEL"),
			CORSOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		DB: DBConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Query: QueryConfig{
			Timeout:        queryTimeout,
			DashboardCache: cacheTTL,
		},
		RateLimit: RateLimitConfig{
			RPS:            v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:          v.GetInt("RATE_LIMIT_BURST"),
			TrustedProxies: trustedProxies,
		},
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// parsePrefixes reads a comma separated list of CIDRs or bare addresses.
func parsePrefixes(raw string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.Contains(item, "/") {
			p, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, err
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// DSN returns the key/value connection string used by gorm.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// URL returns the pgx5:// form expected by the migration driver.
func (c DBConfig) URL() string {
	return fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Addr is the host:port pair go-redis dials.
func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
