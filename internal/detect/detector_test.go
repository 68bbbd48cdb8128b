package detect

import (
	"reflect"
	"testing"

	"github.com/mutluarslanoglu/BaglamliTurkcelestirmeYapayZekaDestekliMetinDonusumSistemi/internal/lexicon"
)

func TestDetectCandidatesBalanced(t *testing.T) {
	lex := lexicon.New(
		[]string{"performans", "optimize"},
		map[string][]string{"optimize": {"eniyilemek", "iyileştirmek"}},
		nil,
	)
	text := "Projenin performansını optimize ettik."

	got := DetectCandidates(lex, text, LevelBalanced)
	if len(got) != 1 {
		t.Fatalf("candidate count = %d, want 1 (%+v)", len(got), got)
	}

	c := got[0]
	if c.ID != "w:23:31" {
		t.Errorf("ID = %q, want \"w:23:31\"", c.ID)
	}
	if c.Original != "optimize" || c.ForeignNorm != "optimize" {
		t.Errorf("Original/ForeignNorm = %q/%q", c.Original, c.ForeignNorm)
	}
	if c.Start != 23 || c.End != 31 {
		t.Errorf("span = [%d, %d), want [23, 31)", c.Start, c.End)
	}
	if c.Context != text {
		t.Errorf("Context = %q", c.Context)
	}
}

func TestDetectCandidatesProtectedURL(t *testing.T) {
	lex := lexicon.New([]string{"optimize"}, nil, nil)
	text := "Visit https://example.com/optimize now"

	if got := DetectCandidates(lex, text, LevelBalanced); len(got) != 0 {
		t.Errorf("candidates inside URL span = %+v, want none", got)
	}
}

func TestDetectCandidatesPhraseWinsOverlap(t *testing.T) {
	lex := lexicon.New([]string{"big data", "data"}, nil, nil)
	text := "Bu big data projesi."

	got := DetectCandidates(lex, text, LevelStrict)
	if len(got) != 1 {
		t.Fatalf("candidate count = %d, want 1 (%+v)", len(got), got)
	}
	c := got[0]
	if c.ID != "ph:3:11" || c.Original != "big data" {
		t.Errorf("got %+v, want phrase candidate ph:3:11 %q", c, "big data")
	}
}

func TestDetectCandidatesWhitelist(t *testing.T) {
	lex := lexicon.New([]string{"data"}, nil, []string{"Data"})
	text := "Şirkette data var."

	if got := DetectCandidates(lex, text, LevelStrict); len(got) != 0 {
		t.Errorf("whitelisted token detected: %+v", got)
	}
}

func TestDetectCandidatesSkipsAcronymsAndProperNouns(t *testing.T) {
	lex := lexicon.New([]string{"api", "data"}, nil, nil)

	// "API" kısaltma, "Data" cümle ortasında özel ad gibi görünür.
	text := "Yeni API geldi ve Data bozuldu."
	if got := DetectCandidates(lex, text, LevelStrict); len(got) != 0 {
		t.Errorf("acronym/proper-noun tokens detected: %+v", got)
	}

	// Cümle başındaki büyük harf muaftır.
	text2 := "Data bozuldu."
	got := DetectCandidates(lex, text2, LevelStrict)
	if len(got) != 1 || got[0].Original != "Data" {
		t.Errorf("sentence-initial capital should match, got %+v", got)
	}
}

func TestDetectCandidatesDisjointAndBounded(t *testing.T) {
	lex := lexicon.New(
		[]string{"big data", "data", "optimize", "performans"},
		nil, nil,
	)
	text := "Bu big data işi. Sonra optimize edip performansı ölçtük."
	rs := []rune(text)

	got := DetectCandidates(lex, text, LevelStrict)
	if len(got) == 0 {
		t.Fatal("no candidates found")
	}

	lastEnd := 0
	for _, c := range got {
		if c.Start < 0 || c.End <= c.Start || c.End > len(rs) {
			t.Errorf("span out of bounds: %+v", c)
		}
		if string(rs[c.Start:c.End]) != c.Original {
			t.Errorf("text[%d:%d] = %q, Original = %q",
				c.Start, c.End, string(rs[c.Start:c.End]), c.Original)
		}
		if c.Start < lastEnd {
			t.Errorf("overlapping candidate: %+v", c)
		}
		lastEnd = c.End
	}
}

func TestDetectCandidatesIdempotent(t *testing.T) {
	lex := lexicon.New([]string{"optimize", "feedback"}, nil, nil)
	text := "Önce optimize et, sonra feedback topla."

	first := DetectCandidates(lex, text, LevelStrict)
	second := DetectCandidates(lex, text, LevelStrict)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("detection is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestDetectCandidatesLevelMonotonicity(t *testing.T) {
	lex := lexicon.New([]string{"optimize", "şablon"}, nil, nil)
	text := "Bu optimize şablon işi."

	ids := func(level Level) map[string]struct{} {
		out := map[string]struct{}{}
		for _, c := range DetectCandidates(lex, text, level) {
			out[c.ID] = struct{}{}
		}
		return out
	}

	light := ids(LevelLight)
	balanced := ids(LevelBalanced)
	strict := ids(LevelStrict)

	// "şablon": ASCII değil ve sözlükte anahtar değil, light'ta elenir.
	if len(light) != 1 || len(balanced) != 2 || len(strict) != 2 {
		t.Fatalf("set sizes = %d/%d/%d, want 1/2/2", len(light), len(balanced), len(strict))
	}
	for id := range light {
		if _, ok := balanced[id]; !ok {
			t.Errorf("light candidate %s missing at balanced", id)
		}
	}
	for id := range balanced {
		if _, ok := strict[id]; !ok {
			t.Errorf("balanced candidate %s missing at strict", id)
		}
	}
}

func TestDetectCandidatesEmptyInputs(t *testing.T) {
	empty := lexicon.New(nil, nil, nil)
	if got := DetectCandidates(empty, "optimize edelim.", LevelStrict); len(got) != 0 {
		t.Errorf("empty lexicon produced candidates: %+v", got)
	}
	lex := lexicon.New([]string{"optimize"}, nil, nil)
	if got := DetectCandidates(lex, "", LevelStrict); len(got) != 0 {
		t.Errorf("empty text produced candidates: %+v", got)
	}
	if got := DetectCandidates(lex, "   ", LevelStrict); len(got) != 0 {
		t.Errorf("whitespace text produced candidates: %+v", got)
	}
}
