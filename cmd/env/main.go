// Обучающий пример: godotenv + envconfig в одном файле.
//
// godotenv — загружает переменные из файла .env в os.Environ (локальная разработка).
// envconfig — заполняет структуру из переменных окружения по тегам envconfig.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ServerConfig — настройки HTTP-сервера (вложенная структура).
// При префиксе CALCHUB и теге SERVER переменные: CALCHUB_SERVER_HOST, CALCHUB_SERVER_PORT.
type ServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"8080"`
}

// DBConfig — настройки подключения к БД (вложенная структура).
// При префиксе CALCHUB и теге DB переменные: CALCHUB_DB_HOST, CALCHUB_DB_PORT и т.д.
type DBConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:"postgres"`
	DBName   string `envconfig:"NAME" default:"calchub"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
}

// Config — конфиг приложения. Префикс "CALCHUB" задаётся в Process("CALCHUB", &cfg).
// Все переменные: CALCHUB_LOG_LEVEL, CALCHUB_STORAGE, CALCHUB_SERVER_HOST, CALCHUB_DB_HOST, ...
type Config struct {
	LogLevel string       `envconfig:"LOG_LEVEL" default:"info"`
	Storage  string       `envconfig:"STORAGE" default:"pg"`
	Server   ServerConfig `envconfig:"SERVER"`
	DB       DBConfig     `envconfig:"DB"`
}

func main() {
	// --- godotenv: загрузка .env в окружение ---
	// Load читает файл .env и добавляет пары KEY=VALUE в os.Environ.
	// Если файла нет — ошибка. Игнорируем её: в прод обычно .env не используют.
	if err := godotenv.Load(); err != nil {
		log.Printf("файл .env не найден (игнорируем): %v", err)
	}
	// После Load() переменные из .env доступны через os.Getenv("CALCHUB_SERVER_PORT") и т.д.

	// --- envconfig: заполнение структуры из окружения ---
	// Process("CALCHUB", &cfg) — префикс CALCHUB, переменные: CALCHUB_SERVER_HOST, CALCHUB_DB_PORT и т.д.
	var cfg Config
	if err := envconfig.Process("CALCHUB", &cfg); err != nil {
		log.Fatalf("ошибка конфига: %v", err)
	}

	// Используем конфиг
	fmt.Println("Конфиг из env (префикс CALCHUB):")
	fmt.Printf("  LogLevel: %s\n", cfg.LogLevel)
	fmt.Printf("  Storage:  %s\n", cfg.Storage)
	fmt.Printf("  Server:   %s:%s\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  DB:       host=%s port=%s user=%s dbname=%s sslmode=%s\n",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.DBName, cfg.DB.SSLMode)

	if v := os.Getenv("CALCHUB_SERVER_PORT"); v != "" {
		fmt.Printf("  os.Getenv(\"CALCHUB_SERVER_PORT\") = %q\n", v)
	}
}
