// Package customlist, kullanıcıların sonradan eklediği beyaz liste
// sözcüklerini Redis'te bir küme olarak tutar. Statik whitelist.txt'nin
// aksine çalışma anında değişebilir; tespit çağrılarına istek başına ek
// beyaz liste olarak katılır.
package customlist

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const setKey = "beyaz_liste:ozel"

type List struct {
	redis *redis.Client
	log   zerolog.Logger
}

func New(redisClient *redis.Client, log zerolog.Logger) *List {
	return &List{
		redis: redisClient,
		log:   log,
	}
}

// Add, sözcüğü özel beyaz listeye ekler.
func (l *List) Add(ctx context.Context, word string) error {
	if err := l.redis.SAdd(ctx, setKey, word).Err(); err != nil {
		l.log.Error().Err(err).Str("word", word).Msg("Beyaz listeye ekleme başarısız")
		return fmt.Errorf("beyaz listeye eklenemedi: %w", err)
	}
	l.log.Debug().Str("word", word).Msg("Beyaz listeye eklendi")
	return nil
}

// Remove, sözcüğü özel beyaz listeden çıkarır.
func (l *List) Remove(ctx context.Context, word string) error {
	if err := l.redis.SRem(ctx, setKey, word).Err(); err != nil {
		l.log.Error().Err(err).Str("word", word).Msg("Beyaz listeden çıkarma başarısız")
		return fmt.Errorf("beyaz listeden çıkarılamadı: %w", err)
	}
	l.log.Debug().Str("word", word).Msg("Beyaz listeden çıkarıldı")
	return nil
}

// All, özel beyaz listedeki tüm sözcükleri döndürür.
func (l *List) All(ctx context.Context) ([]string, error) {
	words, err := l.redis.SMembers(ctx, setKey).Result()
	if err != nil {
		l.log.Error().Err(err).Msg("Beyaz liste okunamadı")
		return nil, fmt.Errorf("beyaz liste okunamadı: %w", err)
	}
	return words, nil
}
