package detect

import "sort"

// Türkçe çekim eki envanteri: çoğul, iyelik, hâl ekleri, ilgi eki "ki",
// bildirme/rivayet/gelecek zaman ve araç ekleri. Dil bilgisel bir çözümleme
// değildir; ünlü uyumu ya da ek sıralaması doğrulanmaz.
var suffixInventory = []string{
	"lar", "ler",
	"ım", "im", "um", "üm", "m",
	"ın", "in", "un", "ün", "n",
	"ı", "i", "u", "ü",
	"a", "e",
	"da", "de", "ta", "te",
	"dan", "den", "tan", "ten",
	"ya", "ye",
	"ki",
	"dır", "dir", "dur", "dür", "tır", "tir", "tur", "tür",
	"mış", "miş", "muş", "müş",
	"acak", "ecek",
	"yı", "yi", "yu", "yü",
	"yla", "yle",
}

// suffixesByLength: her turda en uzun ek önce denensin diye azalan uzunlukta.
var suffixesByLength = func() [][]rune {
	ordered := make([]string, len(suffixInventory))
	copy(ordered, suffixInventory)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len([]rune(ordered[i])) > len([]rune(ordered[j]))
	})
	out := make([][]rune, len(ordered))
	for i, s := range ordered {
		out[i] = []rune(s)
	}
	return out
}()

func isLowerWordLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'ç', 'ğ', 'ı', 'ö', 'ş', 'ü':
		return true
	}
	return false
}

// SplitRootSuffix, küçük harfe indirgenmiş bir token'ı sondan ek soyarak
// (kök, ek) ikilisine ayırır. Her turda envanterdeki en uzun eşleşen ek
// soyulur; kök boş kalacaksa soyma durur. Hiç ek eşleşmezse ek boş döner.
func SplitRootSuffix(norm string) (root, suffix string) {
	rs := []rune(norm)
	for _, r := range rs {
		if !isLowerWordLetter(r) {
			// Kesme işaretli ya da karışık token'larda soyma denenmez.
			return norm, ""
		}
	}

	end := len(rs)
	for {
		matched := false
		for _, suf := range suffixesByLength {
			n := len(suf)
			if n >= end {
				continue
			}
			tail := rs[end-n : end]
			if runesEqual(tail, suf) {
				end -= n
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return string(rs[:end]), string(rs[end:])
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
