package detect

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

// Span, metin içinde yarı açık [Start, End) bir rune aralığıdır.
type Span struct {
	Start int
	End   int
}

var (
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
	urlRe       = regexp.MustCompile(`https?://\S+`)
	emailRe     = regexp.MustCompile(`\b\S+@\S+\.\S+\b`)
)

// ProtectedSpans, asla dokunulmaması gereken bölgeleri (kod bloğu, URL,
// e-posta) rune ofsetleriyle döndürür. Saf fonksiyondur, hata üretmez.
func ProtectedSpans(text string) []Span {
	var spans []Span
	for _, re := range []*regexp.Regexp{codeBlockRe, urlRe, emailRe} {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{
				Start: runeOffset(text, m[0]),
				End:   runeOffset(text, m[1]),
			})
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return spans
}

// inProtected: [a,b) aralığı ancak bir korumalı aralığın TAMAMEN içindeyse
// korunur; kısmi örtüşme korumaz.
func inProtected(a, b int, protected []Span) bool {
	for _, s := range protected {
		if a >= s.Start && b <= s.End {
			return true
		}
	}
	return false
}

func runeOffset(text string, byteOff int) int {
	return utf8.RuneCountInString(text[:byteOff])
}
