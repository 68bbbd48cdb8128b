package prefs

import (
	"context"
	"database/sql"
	"fmt"
)

const createTableStmt = `
CREATE TABLE IF NOT EXISTS tercih_puanlari(
    user_id      TEXT NOT NULL,
    foreign_term TEXT NOT NULL,
    suggestion   TEXT NOT NULL,
    context_tag  TEXT NOT NULL,
    score        INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY(user_id, foreign_term, suggestion, context_tag)
)`

// PostgresStore, puan tablosunu Postgres'te tutar. Artırma tek bir
// INSERT ... ON CONFLICT ... DO UPDATE ifadesidir; oku-sonra-yaz yapılmaz.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if _, err := db.Exec(createTableStmt); err != nil {
		return nil, fmt.Errorf("tercih tablosu oluşturulamadı: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) AddScore(ctx context.Context, userID, foreignTerm, suggestion, contextTag string, delta int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tercih_puanlari(user_id, foreign_term, suggestion, context_tag, score)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT(user_id, foreign_term, suggestion, context_tag)
		DO UPDATE SET score = tercih_puanlari.score + EXCLUDED.score`,
		userID, foreignTerm, suggestion, contextTag, delta)
	if err != nil {
		return fmt.Errorf("puan güncellenemedi: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetScores(ctx context.Context, userID, foreignTerm, contextTag string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT suggestion, score FROM tercih_puanlari
		WHERE user_id = $1 AND foreign_term = $2 AND context_tag = $3`,
		userID, foreignTerm, contextTag)
	if err != nil {
		return nil, fmt.Errorf("puanlar okunamadı: %w", err)
	}
	defer rows.Close()

	scores := map[string]int{}
	for rows.Next() {
		var suggestion string
		var score int
		if err := rows.Scan(&suggestion, &score); err != nil {
			return nil, fmt.Errorf("puan satırı okunamadı: %w", err)
		}
		scores[suggestion] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("puanlar okunamadı: %w", err)
	}
	return scores, nil
}
