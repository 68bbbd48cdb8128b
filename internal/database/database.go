package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Connect, tercih puanlarının tutulduğu Postgres veritabanına bağlanır.
// Bağlantı servis ömrü boyunca yaşar; istek başına bağlantı açılmaz.
func Connect(url string, log zerolog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("veritabanı açılamadı: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("veritabanına ulaşılamadı: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	log.Info().Msg("Postgres bağlantısı başarılı")
	return db, nil
}
