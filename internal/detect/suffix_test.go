package detect

import "testing"

func TestSplitRootSuffix(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantRoot   string
		wantSuffix string
	}{
		{
			name:       "possessive and accusative chain",
			input:      "performansını",
			wantRoot:   "performans",
			wantSuffix: "ını",
		},
		{
			name:       "locative",
			input:      "evde",
			wantRoot:   "ev",
			wantSuffix: "de",
		},
		{
			name:       "plural",
			input:      "kitaplar",
			wantRoot:   "kitap",
			wantSuffix: "lar",
		},
		{
			name:       "ablative",
			input:      "okuldan",
			wantRoot:   "okul",
			wantSuffix: "dan",
		},
		{
			name:       "reported past",
			input:      "güzelmiş",
			wantRoot:   "güzel",
			wantSuffix: "miş",
		},
		{
			name:       "no suffix",
			input:      "model",
			wantRoot:   "model",
			wantSuffix: "",
		},
		{
			name:       "apostrophe token left untouched",
			input:      "ankara'da",
			wantRoot:   "ankara'da",
			wantSuffix: "",
		},
		{
			name:       "root may not become empty",
			input:      "e",
			wantRoot:   "e",
			wantSuffix: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, suffix := SplitRootSuffix(tt.input)
			if root != tt.wantRoot || suffix != tt.wantSuffix {
				t.Errorf("SplitRootSuffix(%q) = (%q, %q), want (%q, %q)",
					tt.input, root, suffix, tt.wantRoot, tt.wantSuffix)
			}
		})
	}
}
