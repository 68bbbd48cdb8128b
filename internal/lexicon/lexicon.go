// Package lexicon, yabancı terim listesi, öneri sözlüğü ve beyaz listeyi
// açılışta bir kez yükleyip değişmez (immutable) bir bağlam nesnesi olarak sunar.
package lexicon

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

type Lexicon struct {
	terms         map[string]struct{}
	phrases       []string // boşluk içeren terimler, uzunluğa göre azalan sırada
	suggestions   map[string][]string
	whitelist     map[string]struct{} // dosyadaki haliyle
	whitelistNorm map[string]struct{} // küçük harfe indirgenmiş
}

// Normalize, Türkçe büyük/küçük harf tablosuyla (I→ı, İ→i) küçük harfe indirger.
func Normalize(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// New, bellek-içi verilerden bir Lexicon kurar. Testler ve yükleyici kullanır.
func New(terms []string, suggestions map[string][]string, whitelist []string) *Lexicon {
	lex := &Lexicon{
		terms:         make(map[string]struct{}, len(terms)),
		suggestions:   make(map[string][]string, len(suggestions)),
		whitelist:     make(map[string]struct{}, len(whitelist)),
		whitelistNorm: make(map[string]struct{}, len(whitelist)),
	}
	for _, t := range terms {
		lex.terms[t] = struct{}{}
		if strings.ContainsAny(t, " \t") {
			lex.phrases = append(lex.phrases, t)
		}
	}
	// Uzun ifadeler önce aransın diye azalan uzunluk sırası.
	sort.SliceStable(lex.phrases, func(i, j int) bool {
		return len(lex.phrases[i]) > len(lex.phrases[j])
	})
	for term, sugg := range suggestions {
		lex.suggestions[term] = sugg
	}
	for _, w := range whitelist {
		lex.whitelist[w] = struct{}{}
		lex.whitelistNorm[Normalize(w)] = struct{}{}
	}
	return lex
}

// Load, veri dizinindeki dosyalardan Lexicon'u kurar. Eksik dosyalar hata
// değildir: ilgili koleksiyon boş kalır ve tespit "aday yok" ile sonuçlanır.
func Load(dataDir string, log zerolog.Logger) *Lexicon {
	terms := loadLines(filepath.Join(dataDir, "foreign_terms.txt"), log)
	whitelist := loadLines(filepath.Join(dataDir, "whitelist.txt"), log)
	suggestions := loadJSON(filepath.Join(dataDir, "suggestions_1000.json"), log)

	lex := New(terms, suggestions, whitelist)
	log.Info().
		Int("terms", len(lex.terms)).
		Int("phrases", len(lex.phrases)).
		Int("suggestions", len(lex.suggestions)).
		Int("whitelist", len(lex.whitelist)).
		Msg("Sözlük verileri yüklendi")
	return lex
}

// WithExtraWhitelist, beyaz listeye ek sözcükler eklenmiş türetilmiş bir
// Lexicon döndürür; terim ve öneri tabloları paylaşılır. Redis'teki kullanıcı
// beyaz listesi istek başına bu yolla devreye girer.
func (l *Lexicon) WithExtraWhitelist(words []string) *Lexicon {
	if len(words) == 0 {
		return l
	}
	derived := &Lexicon{
		terms:         l.terms,
		phrases:       l.phrases,
		suggestions:   l.suggestions,
		whitelist:     make(map[string]struct{}, len(l.whitelist)+len(words)),
		whitelistNorm: make(map[string]struct{}, len(l.whitelistNorm)+len(words)),
	}
	for w := range l.whitelist {
		derived.whitelist[w] = struct{}{}
	}
	for w := range l.whitelistNorm {
		derived.whitelistNorm[w] = struct{}{}
	}
	for _, w := range words {
		derived.whitelist[w] = struct{}{}
		derived.whitelistNorm[Normalize(w)] = struct{}{}
	}
	return derived
}

// IsTerm, normalize edilmiş halin yabancı terim listesinde olup olmadığını söyler.
func (l *Lexicon) IsTerm(norm string) bool {
	_, ok := l.terms[norm]
	return ok
}

// Phrases, çok kelimeli terimleri uzunluğa göre azalan sırada döndürür.
// Dönen dilim paylaşılır; çağıran değiştirmemelidir.
func (l *Lexicon) Phrases() []string { return l.phrases }

// SuggestionsFor, terimin yazar öncelik sıralı öneri listesini döndürür.
func (l *Lexicon) SuggestionsFor(norm string) []string { return l.suggestions[norm] }

// HasSuggestions, terimin öneri sözlüğünde anahtar olup olmadığını söyler.
func (l *Lexicon) HasSuggestions(norm string) bool {
	_, ok := l.suggestions[norm]
	return ok
}

// WhitelistedExact, sözcüğün beyaz listede dosyadaki haliyle geçip geçmediğini söyler.
func (l *Lexicon) WhitelistedExact(word string) bool {
	_, ok := l.whitelist[word]
	return ok
}

// Whitelisted, büyük/küçük harf duyarlı ya da duyarsız eşleşmeyi birlikte dener.
func (l *Lexicon) Whitelisted(word string) bool {
	if l.WhitelistedExact(word) {
		return true
	}
	_, ok := l.whitelistNorm[Normalize(word)]
	return ok
}

func loadLines(path string, log zerolog.Logger) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Msg("Veri dosyası bulunamadı, boş liste kullanılıyor")
		return nil
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func loadJSON(path string, log zerolog.Logger) map[string][]string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Msg("Öneri sözlüğü bulunamadı, boş sözlük kullanılıyor")
		return map[string][]string{}
	}
	out := map[string][]string{}
	if err := json.Unmarshal(data, &out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Öneri sözlüğü çözümlenemedi, boş sözlük kullanılıyor")
		return map[string][]string{}
	}
	return out
}
