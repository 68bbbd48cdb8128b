// Package rank, sözlüğün yazar öncelik sıralı öneri listesini öğrenilmiş
// puanlarla birleştirip kişiselleştirilmiş bir sıralama üretir.
package rank

import "sort"

type RankedSuggestion struct {
	Suggestion string `json:"suggestion"`
	Score      int    `json:"score"`
}

// Rank, her temel öneri için puanı (yoksa 0) bağlar ve puana göre azalan
// kararlı sıralama uygular. Kararlılık, eşit puanlı önerilerin (yeni
// kullanıcıdaki hepsi-sıfır durumu dahil) sözlük sırasını korumasını sağlar.
func Rank(base []string, scores map[string]int) []RankedSuggestion {
	items := make([]RankedSuggestion, len(base))
	for i, s := range base {
		items[i] = RankedSuggestion{Suggestion: s, Score: scores[s]}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	return items
}
