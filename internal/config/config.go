package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment  string        `mapstructure:"APP_ENV"`
	APIBaseURL   string        `mapstructure:"API_BASE_URL"`
	APITimeout   time.Duration `mapstructure:"API_TIMEOUT"`
	StoreBackend string        `mapstructure:"STORE_BACKEND"`
	StorePath    string        `mapstructure:"STORE_PATH"`
	RedisAddress string        `mapstructure:"REDIS_ADDRESS"`

	// Настройки dev-сервера
	Port      int           `mapstructure:"PORT"`
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`
}

func LoadConfig() (*Config, error) {
	// .env поверх окружения, если файл есть
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:3001/api")
	viper.SetDefault("API_TIMEOUT", "10s")
	viper.SetDefault("STORE_BACKEND", "sqlite")
	viper.SetDefault("STORE_PATH", "favorite-car.db")
	viper.SetDefault("REDIS_ADDRESS", "localhost:6379")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("TOKEN_TTL", "24h")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "your-secret-key" {
		log.Println("Warning: JWT_SECRET is set to its default insecure value. Please set a strong secret in your environment or .env file.")
	}

	return &cfg, nil
}
