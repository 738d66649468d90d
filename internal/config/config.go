package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis
	EnableRedis bool
	RedisURL    string

	// CORS
	CORSOrigins []string

	// Features
	EnableCache   bool
	EnableMetrics bool

	// Cache behaviour
	PageCacheTTL     time.Duration
	PageCacheRefresh time.Duration

	// Site Meta
	SiteName        string
	SiteDescription string
	SiteURL         string
	StaticDir       string
}

func New() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		EnableRedis: getEnvAsBool("ENABLE_REDIS", true),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// CORS
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		// Features
		EnableCache:   getEnvAsBool("ENABLE_CACHE", true),
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		// Cache behaviour
		PageCacheTTL:     getEnvAsDuration("PAGE_CACHE_TTL", time.Hour),
		PageCacheRefresh: getEnvAsDuration("PAGE_CACHE_REFRESH", 30*time.Minute),

		// Site Meta
		SiteName:        getEnv("SITE_NAME", "学习中心"),
		SiteDescription: getEnv("SITE_DESCRIPTION", "探索提示词库与学习路径图，持续提升使用技巧。"),
		SiteURL:         getEnv("SITE_URL", "http://localhost:8080"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		var seconds int
		if _, scanErr := fmt.Sscanf(valueStr, "%d", &seconds); scanErr == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
		return defaultValue
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
