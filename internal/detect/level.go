package detect

import (
	"errors"
	"fmt"

	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/lexicon"
)

// Level, tespit agresifliğini belirler. Kapalı bir tiptir: ParseLevel dışında
// değer üretilmez, tanınmayan seviyeler sessizce kabul edilmez.
type Level int

const (
	LevelLight Level = iota
	LevelBalanced
	LevelStrict
)

var ErrUnknownLevel = errors.New("bilinmeyen seviye")

func ParseLevel(s string) (Level, error) {
	switch s {
	case "light":
		return LevelLight, nil
	case "balanced":
		return LevelBalanced, nil
	case "strict":
		return LevelStrict, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) String() string {
	switch l {
	case LevelLight:
		return "light"
	case LevelBalanced:
		return "balanced"
	case LevelStrict:
		return "strict"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// commonLoanwords: balanced seviyede es geçilen, dile iyice yerleşmiş alıntılar.
var commonLoanwords = map[string]struct{}{
	"proje": {}, "rapor": {}, "analiz": {}, "model": {},
	"metod": {}, "metodoloji": {}, "test": {}, "grafik": {},
	"tablo": {}, "form": {}, "format": {}, "sistem": {},
	"performans": {},
}

// allows, normalize edilmiş terimin bu seviyede aday olup olamayacağını söyler.
func (l Level) allows(term string, lex *lexicon.Lexicon) bool {
	switch l {
	case LevelStrict:
		return true
	case LevelBalanced:
		_, common := commonLoanwords[term]
		return !common
	default:
		// light: öneri sözlüğünde anahtar olanlar ya da bariz İngilizce
		// (saf ASCII, en az 4 harf) terimler.
		return lex.HasSuggestions(term) || (isASCII(term) && len([]rune(term)) >= 4)
	}
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
