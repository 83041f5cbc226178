package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apihttp "calcHub/internal/api/http"
	"calcHub/internal/infrastructure/click"
	"calcHub/internal/infrastructure/kafka"
	"calcHub/internal/infrastructure/mongo"
	"calcHub/internal/infrastructure/pg"
	"calcHub/internal/infrastructure/redis"
	authUsecase "calcHub/internal/usecase/auth"
)

const AppName = "CALCHUB"

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCHUB.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Storage выбирает хранилище вычислений: pg или mongo. Пользователи всегда в PostgreSQL.
	Storage string `envconfig:"STORAGE" default:"pg"`

	Server     apihttp.ServerConfig    `envconfig:"SERVER"`
	DB         pg.Config               `envconfig:"DB"`
	Redis      redis.Config            `envconfig:"REDIS"`
	Kafka      kafka.Config            `envconfig:"KAFKA"`
	ClickHouse click.Config            `envconfig:"CLICKHOUSE"`
	Mongo      mongo.Config            `envconfig:"MONGO"`
	Token      authUsecase.TokenConfig `envconfig:"TOKEN"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
