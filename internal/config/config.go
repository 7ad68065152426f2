package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию движка согласования форм
type Config struct {
	LogLevel             string
	MinSplitQuantity     int
	DefaultSplitQuantity int
	MaxAmount            float64
	MaxInstallments      int
	MaxQuantity          int
	MaxRate              float64
	OTELEndpoint         string
	OTELServiceName      string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:             getEnvString("LOG_LEVEL", "INFO"),
		MinSplitQuantity:     getEnvInt("MIN_SPLIT_QUANTITY", 3),
		DefaultSplitQuantity: getEnvInt("DEFAULT_SPLIT_QUANTITY", 3),
		MaxAmount:            getEnvFloat("MAX_AMOUNT", 1e9),
		MaxInstallments:      getEnvInt("MAX_INSTALLMENTS", 600),
		MaxQuantity:          getEnvInt("MAX_QUANTITY", 1000),
		MaxRate:              getEnvFloat("MAX_RATE", 1000),
		OTELEndpoint:         getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:      getEnvString("OTEL_SERVICE_NAME", "reconcile-engine"),
	}

	// Режим "между многими" не может начинаться с количества меньше минимума
	if cfg.DefaultSplitQuantity < cfg.MinSplitQuantity {
		cfg.DefaultSplitQuantity = cfg.MinSplitQuantity
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию, без чтения окружения
func Default() *Config {
	return &Config{
		LogLevel:             "INFO",
		MinSplitQuantity:     3,
		DefaultSplitQuantity: 3,
		MaxAmount:            1e9,
		MaxInstallments:      600,
		MaxQuantity:          1000,
		MaxRate:              1000,
		OTELServiceName:      "reconcile-engine",
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
