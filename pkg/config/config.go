package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port              string
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string
	MockPayments      bool
	RedisConn         string
	DatabaseURL       string
	ExpoPushURL       string
	LogLevel          string
}

func LoadConfig() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		RazorpayBaseURL:   getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		MockPayments:      getBoolEnv("RAZORPAY_MOCK", false),
		RedisConn:         getEnv("REDIS_CONN", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		ExpoPushURL:       getEnv("EXPO_PUSH_URL", "https://exp.host/--/api/v2/push/send"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
	}
}

// RazorpayConfigured reports whether both processor credentials are present.
// Their absence is not fatal, it switches the gateway into unconfigured or
// mock behavior.
func (c Config) RazorpayConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
