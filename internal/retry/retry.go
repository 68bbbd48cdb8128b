// Exponential backoff retry helper. Açılıştaki Postgres/Redis bağlantıları
// gibi geçici olarak başarısız olabilen işlemler için kullanılır.

package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// WithExponentialBackoff, fn'i üstel geri çekilmeyle yeniden dener.
// Backoff: 1s, 2s, 4s... op, log satırlarında işlemi adlandırır.
func WithExponentialBackoff[T any](
	ctx context.Context,
	op string,
	fn func(ctx context.Context) (T, error),
	maxRetries int,
) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err = fn(ctx)
		if err == nil {
			if attempt > 0 {
				log.Info().
					Str("op", op).
					Int("attempt", attempt+1).
					Msg("Retry başarılı")
			}
			return result, nil
		}

		if attempt < maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			log.Warn().
				Err(err).
				Str("op", op).
				Int("attempt", attempt+1).
				Int("max_retries", maxRetries).
				Dur("backoff", backoff).
				Msg("Deneme başarısız, retry ediliyor...")

			select {
			case <-time.After(backoff):
				// sıradaki deneme
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	return result, fmt.Errorf("%s: max retry (%d) aşıldı: %w", op, maxRetries, err)
}
