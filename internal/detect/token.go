package detect

// Token, bir cümle içindeki kelime benzeri bir parçadır. Start ve End cümle
// içi rune ofsetleridir; Index cümledeki kaçıncı token olduğunu söyler.
type Token struct {
	Text  string
	Start int
	End   int
	Index int
}

// isWordLetter: Latin harfleri ve Türkçe'ye özgü 12 harf.
func isWordLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	}
	switch r {
	case 'Ç', 'Ğ', 'İ', 'Ö', 'Ş', 'Ü', 'ç', 'ğ', 'ı', 'ö', 'ş', 'ü':
		return true
	}
	return false
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

// tokenize, cümleyi maksimal harf dizilerine ayırır. Bir token, içinde en
// fazla bir kez kesme işareti ya da tire ile bağlanmış ikinci bir harf dizisi
// barındırabilir ("Ankara'da", "e-posta" gibi).
func tokenize(sentence []rune) []Token {
	var tokens []Token
	i := 0
	for i < len(sentence) {
		if !isWordLetter(sentence[i]) {
			i++
			continue
		}
		j := i
		for j < len(sentence) && isWordLetter(sentence[j]) {
			j++
		}
		if j < len(sentence)-1 && isJoiner(sentence[j]) && isWordLetter(sentence[j+1]) {
			j++
			for j < len(sentence) && isWordLetter(sentence[j]) {
				j++
			}
		}
		tokens = append(tokens, Token{
			Text:  string(sentence[i:j]),
			Start: i,
			End:   j,
			Index: len(tokens),
		})
		i = j
	}
	return tokens
}
