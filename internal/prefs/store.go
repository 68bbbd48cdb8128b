// Package prefs, kullanıcı başına öğrenilen öneri tercihlerinin kalıcı puan
// deposudur. Anahtar (user_id, foreign_term, suggestion, context_tag)
// dörtlüsüdür; puanlar yalnızca toplamalı deltalarla değişir, hiçbir satır
// silinmez. Görülmemiş bir anahtarın puanı 0 kabul edilir (çağıran varsayar;
// GetScores görülmemiş önerileri döndürmez).
package prefs

import "context"

type Store interface {
	// AddScore, puanı tek bir atomik upsert ile artırır: satır yoksa delta ile
	// oluşturulur, varsa delta eklenir. Aynı anahtara eş zamanlı çağrılar
	// kayıp güncellemeye yol açmaz.
	AddScore(ctx context.Context, userID, foreignTerm, suggestion, contextTag string, delta int) error

	// GetScores, (userID, foreignTerm, contextTag) altında puanlanmış tüm
	// önerilerin puan haritasını döndürür.
	GetScores(ctx context.Context, userID, foreignTerm, contextTag string) (map[string]int, error)
}
