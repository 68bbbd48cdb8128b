// Package textops, seçilen önerilerin metne güvenli biçimde geri
// yerleştirilmesini ve özgün büyük/küçük harf düzeninin korunmasını sağlar.
package textops

import (
	"sort"
	"strings"
	"unicode"
)

// Replacement, rune ofsetli yarı açık bir aralığın yeni metinle değişimidir.
type Replacement struct {
	Start int
	End   int
	New   string
}

// PreserveCasing, öneriyi özgün eşleşmenin harf düzenine uydurur: özgün metin
// tamamen büyükse (ve en az iki karakterse) öneri tamamen büyütülür; yalnızca
// ilk harfi büyükse önerinin ilk harfi büyütülür; aksi halde dokunulmaz.
// Büyütme Türkçe tablolarla yapılır (i→İ).
func PreserveCasing(original, suggestion string) string {
	ors := []rune(original)
	if len(ors) >= 2 && allUpper(ors) {
		return strings.ToUpperSpecial(unicode.TurkishCase, suggestion)
	}
	if len(ors) > 0 && unicode.IsUpper(ors[0]) {
		srs := []rune(suggestion)
		if len(srs) > 0 {
			srs[0] = unicode.TurkishCase.ToUpper(srs[0])
		}
		return string(srs)
	}
	return suggestion
}

// ApplyReplacements, değişimleri başlangıç ofsetine göre AZALAN sırada uygular;
// böylece sonraki (yüksek ofsetli) eklemelerin uzunluk değişimleri, henüz
// uygulanmamış düşük ofsetli değişimlerin ofsetlerini geçersiz kılmaz.
func ApplyReplacements(text string, reps []Replacement) string {
	sorted := make([]Replacement, len(reps))
	copy(sorted, reps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	out := []rune(text)
	for _, r := range sorted {
		if r.Start < 0 || r.End > len(out) || r.Start > r.End {
			continue
		}
		spliced := make([]rune, 0, len(out)+len(r.New))
		spliced = append(spliced, out[:r.Start]...)
		spliced = append(spliced, []rune(r.New)...)
		spliced = append(spliced, out[r.End:]...)
		out = spliced
	}
	return string(out)
}

func allUpper(rs []rune) bool {
	hasUpper := false
	for _, r := range rs {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			hasUpper = true
		}
	}
	return hasUpper
}
