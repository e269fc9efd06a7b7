// internal/config/server.go
package config

import (
	"os"
	"strconv"
)

// ServerConfig configures the PNG preview service.
type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	MaxSide      int // верхняя граница стороны картинки в пикселях
}

// LoadServer загружает конфигурацию из переменных окружения
func LoadServer() *ServerConfig {
	return &ServerConfig{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		MaxSide:      getEnvAsInt("MAX_SIDE", 1024),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
