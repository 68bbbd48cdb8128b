package detect

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "three sentences",
			text: "Merhaba dünya. Nasılsın? İyi!",
			want: []string{"Merhaba dünya.", "Nasılsın?", "İyi!"},
		},
		{
			name: "no terminal punctuation",
			text: "noktalama yok",
			want: []string{"noktalama yok"},
		},
		{
			name: "trailing punctuation only",
			text: "Tek cümle.",
			want: []string{"Tek cümle."},
		},
		{
			name: "abbreviation-like dot still splits",
			text: "Dr. Ahmet geldi.",
			want: []string{"Dr.", "Ahmet geldi."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSentences(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentenceOffsets(t *testing.T) {
	text := "Merhaba dünya. Nasılsın? İyi!"
	rs := []rune(text)
	sentences := splitSentences(text)

	got := sentenceOffsets(rs, sentences)
	want := []int{0, 15, 25}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sentenceOffsets = %v, want %v", got, want)
	}

	// Ofsetler gerçekten cümleleri göstermeli.
	for i, s := range sentences {
		srs := []rune(s)
		start := got[i]
		if string(rs[start:start+len(srs)]) != s {
			t.Errorf("offset %d does not point at sentence %q", start, s)
		}
	}
}

func TestSentenceContext(t *testing.T) {
	text := "Merhaba dünya. Nasılsın? İyi!"

	tests := []struct {
		idx  int
		want string
	}{
		{0, "Merhaba dünya."},
		{16, "Nasılsın?"},
		{26, "İyi!"},
	}

	for _, tt := range tests {
		if got := sentenceContext(text, tt.idx); got != tt.want {
			t.Errorf("sentenceContext(%d) = %q, want %q", tt.idx, got, tt.want)
		}
	}
}
