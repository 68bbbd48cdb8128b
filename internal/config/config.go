package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HttpPort string
	LogLevel string
	Env      string

	// Veri dosyaları (foreign_terms.txt, whitelist.txt, suggestions_1000.json)
	DataDir string

	// External Services
	DatabaseURL string // Postgres: tercih puanları
	RedisURL    string // Kullanıcı beyaz listesi (opsiyonel)
}

func Load() (*Config, error) {
	godotenv.Load() // .env varsa yükle

	return &Config{
		HttpPort: GetEnv("TURKCELESTIRME_HTTP_PORT", "12080"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
		Env:      GetEnv("ENV", "development"),

		DataDir: GetEnv("TURKCELESTIRME_DATA_DIR", "data"),

		// Boş bırakılırsa servis bellek-içi puan deposuyla çalışır (geliştirme modu).
		DatabaseURL: GetEnv("DATABASE_URL", ""),
		RedisURL:    GetEnv("REDIS_URL", ""),
	}, nil
}

func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return fallback
}

func GetEnvOrFail(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		// Zerolog yerine standart çıktı kullanıyoruz, bu pakette log bağımlılığına gerek yok.
		fmt.Fprintf(os.Stderr, "FATAL: Gerekli ortam değişkeni tanımlı değil: %s\n", key)
		os.Exit(1)
	}
	return strings.TrimSpace(value)
}
