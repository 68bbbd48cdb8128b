package lexicon

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDerivesPhrases(t *testing.T) {
	lex := New([]string{"data", "big data", "very big data", "optimize"}, nil, nil)

	want := []string{"very big data", "big data"}
	if !reflect.DeepEqual(lex.Phrases(), want) {
		t.Errorf("Phrases() = %v, want %v (uzunluğa göre azalan)", lex.Phrases(), want)
	}
	if !lex.IsTerm("big data") || !lex.IsTerm("optimize") {
		t.Error("phrase and word terms should both be members")
	}
	if lex.IsTerm("yok") {
		t.Error("unknown term reported as member")
	}
}

func TestWhitelistMatching(t *testing.T) {
	lex := New(nil, nil, []string{"Data", "İstanbul"})

	tests := []struct {
		word string
		want bool
	}{
		{"Data", true},     // birebir
		{"data", true},     // küçük harfe indirgenmiş
		{"DATA", true},     // büyük/küçük harf duyarsız
		{"istanbul", true}, // İ → i Türkçe indirgeme
		{"model", false},
	}
	for _, tt := range tests {
		if got := lex.Whitelisted(tt.word); got != tt.want {
			t.Errorf("Whitelisted(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}

	if lex.WhitelistedExact("data") {
		t.Error("WhitelistedExact should not fold case")
	}
}

func TestWithExtraWhitelist(t *testing.T) {
	base := New([]string{"optimize"}, nil, []string{"Data"})
	derived := base.WithExtraWhitelist([]string{"Optimize"})

	if !derived.Whitelisted("optimize") {
		t.Error("extra whitelist entry not effective on derived lexicon")
	}
	if base.Whitelisted("optimize") {
		t.Error("base lexicon mutated by WithExtraWhitelist")
	}
	if !derived.Whitelisted("Data") {
		t.Error("derived lexicon lost base whitelist")
	}
	if derived.WithExtraWhitelist(nil) != derived {
		t.Error("empty extra list should return the same lexicon")
	}
}

func TestLoadMissingFilesDegrade(t *testing.T) {
	lex := Load(t.TempDir(), zerolog.Nop())

	if lex.IsTerm("optimize") || len(lex.Phrases()) != 0 {
		t.Error("missing files should yield an empty lexicon")
	}
	if lex.HasSuggestions("optimize") {
		t.Error("missing suggestion file should yield an empty dictionary")
	}
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	content := "# yorum satırı\n\noptimize\n  feedback  \nbig data\n"
	if err := os.WriteFile(filepath.Join(dir, "foreign_terms.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "suggestions_1000.json"),
		[]byte(`{"optimize": ["eniyilemek"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	lex := Load(dir, zerolog.Nop())

	for _, term := range []string{"optimize", "feedback", "big data"} {
		if !lex.IsTerm(term) {
			t.Errorf("term %q not loaded", term)
		}
	}
	if lex.IsTerm("# yorum satırı") {
		t.Error("comment line loaded as term")
	}
	if got := lex.SuggestionsFor("optimize"); !reflect.DeepEqual(got, []string{"eniyilemek"}) {
		t.Errorf("SuggestionsFor = %v", got)
	}
}
