package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration. Values are read from the
// environment, optionally seeded from a .env file, and are immutable after
// startup.
type Config struct {
	Env              string
	LogLevel         string
	ServerPort       string
	MySQLDSN         string
	RedisAddr        string
	RedisDB          int
	RedisPassword    string
	JWTSecret        string
	JWTExpiryMinutes int
}

// Load builds Config from the environment with sensible defaults.
func Load() *Config {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // a missing .env file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/storefront?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60)

	return &Config{
		Env:              v.GetString("APP_ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		ServerPort:       v.GetString("SERVER_PORT"),
		MySQLDSN:         v.GetString("MYSQL_DSN"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisDB:          v.GetInt("REDIS_DB"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTExpiryMinutes: v.GetInt("JWT_EXPIRATION_MINUTES"),
	}
}
