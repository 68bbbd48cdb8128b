// Package detect, Türkçe metindeki yabancı kökenli kelime ve ifadeleri bulan
// aday tespit motorudur. Tüm ofsetler rune cinsindendir: bir adayın
// [Start, End) aralığı için string([]rune(text)[Start:End]) == Original
// değişmezi geçerlidir. Tespit saf bir fonksiyondur; iyi biçimli metin için
// asla hata üretmez, boş sözlükler "aday yok" ile sonuçlanır.
package detect

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/lexicon"
)

// Candidate, metinde yabancı terim içerdiğine inanılan ayrık bir aralıktır.
// ID, tespit türü ve aralıktan türetilir ("ph:<start>:<end>" / "w:<start>:<end>")
// ve yalnızca aynı metin üzerindeki tek bir tespit geçişi içinde kararlıdır.
type Candidate struct {
	ID          string
	Original    string
	ForeignNorm string
	Start       int
	End         int
	Context     string
	Root        string
	Suffix      string
}

// DetectCandidates, ifade ve kelime geçişlerini çalıştırır, seviye ve koruma
// filtrelerini uygular, örtüşmeleri çözerek konuma göre sıralı, ikişer ikişer
// ayrık bir aday listesi döndürür.
func DetectCandidates(lex *lexicon.Lexicon, text string, level Level) []Candidate {
	rs := []rune(text)
	protected := ProtectedSpans(text)
	var cands []Candidate

	// 1) İfade geçişi: çok kelimeli terimler, küçük harfe indirgenmiş tam
	// metin üzerinde uzun olandan kısaya doğru birebir aranır.
	lower := []rune(lexicon.Normalize(text))
	for _, ph := range lex.Phrases() {
		if !level.allows(ph, lex) {
			continue
		}
		if phraseWhitelisted(ph, lex) {
			continue
		}
		phRunes := []rune(ph)
		from := 0
		for {
			idx := indexRunes(lower, phRunes, from)
			if idx == -1 {
				break
			}
			a, b := idx, idx+len(phRunes)
			from = b
			if inProtected(a, b, protected) {
				continue
			}
			cands = append(cands, Candidate{
				ID:          fmt.Sprintf("ph:%d:%d", a, b),
				Original:    string(rs[a:b]),
				ForeignNorm: ph,
				Start:       a,
				End:         b,
				Context:     sentenceContext(text, a),
				Root:        ph,
				Suffix:      "",
			})
		}
	}

	// 2) Kelime geçişi: cümle cümle, token token.
	trimmed := strings.TrimSpace(text)
	var sentences []string
	if trimmed != "" {
		sentences = splitSentences(trimmed)
	}
	offsets := sentenceOffsets(rs, sentences)

	for si, s := range sentences {
		base := offsets[si]
		for _, tok := range tokenize([]rune(s)) {
			a, b := base+tok.Start, base+tok.End
			if inProtected(a, b, protected) {
				continue
			}

			// Beyaz liste, kısaltma ve özel ad korumaları.
			if lex.Whitelisted(tok.Text) {
				continue
			}
			if isAllCaps(tok.Text) {
				continue
			}
			if looksLikeProperNoun(tok.Text, tok.Index) {
				continue
			}

			norm := lexicon.Normalize(tok.Text)
			root, suffix := SplitRootSuffix(norm)

			// Önce tam hali, sonra kökü denenir.
			var hit string
			switch {
			case lex.IsTerm(norm):
				hit = norm
			case lex.IsTerm(root):
				hit = root
			}
			if hit == "" || !level.allows(hit, lex) {
				continue
			}

			cands = append(cands, Candidate{
				ID:          fmt.Sprintf("w:%d:%d", a, b),
				Original:    tok.Text,
				ForeignNorm: hit,
				Start:       a,
				End:         b,
				Context:     s,
				Root:        root,
				Suffix:      suffix,
			})
		}
	}

	return resolveOverlaps(cands)
}

// resolveOverlaps: (başlangıç artan, aralık uzunluğu azalan) sıralamasıyla
// aynı başlangıçta uzun olan (ifade) kazanır; soldan sağa taranırken bir aday
// ancak başlangıcı son kabul edilenin bitişinin gerisinde değilse alınır.
func resolveOverlaps(cands []Candidate) []Candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Start != cands[j].Start {
			return cands[i].Start < cands[j].Start
		}
		return (cands[i].End - cands[i].Start) > (cands[j].End - cands[j].Start)
	})
	filtered := make([]Candidate, 0, len(cands))
	lastEnd := -1
	for _, c := range cands {
		if c.Start < lastEnd {
			continue
		}
		filtered = append(filtered, c)
		lastEnd = c.End
	}
	return filtered
}

// phraseWhitelisted: ifadenin herhangi bir kelimesi beyaz listede birebir
// geçiyorsa ifadeye dokunulmaz.
func phraseWhitelisted(ph string, lex *lexicon.Lexicon) bool {
	for _, w := range strings.Fields(ph) {
		if lex.WhitelistedExact(w) {
			return true
		}
	}
	return false
}

// isAllCaps: en az iki karakterli ve tamamı büyük harf olan token'lar
// kısaltma sayılır.
func isAllCaps(token string) bool {
	rs := []rune(token)
	if len(rs) < 2 {
		return false
	}
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

// looksLikeProperNoun: cümle başı olmayan büyük harfli token özel ad sayılır;
// cümle başındaki büyük harf dil bilgisi gereğidir, gösterge değildir.
func looksLikeProperNoun(token string, indexInSentence int) bool {
	if indexInSentence == 0 {
		return false
	}
	rs := []rune(token)
	return len(rs) > 0 && unicode.IsUpper(rs[0])
}
