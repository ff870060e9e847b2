package locale

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"en", "en"},
		{"EN", "en"},
		{"en-US", "en"},
		{"en-GB", "en"},
		{"de", "de"},
		{"de-AT", "de"},
		{"fa", "fa"},
		{"fa-IR", "fa"},
		// Unsupported but well-formed tags come back lowercased so table
		// lookups fall through to their generic defaults.
		{"fr", "fr"},
		{"not a tag!", "not a tag!"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.code); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestMarket(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"fa", "IR"},
		{"fa-IR", "IR"},
		{"de", "DE"},
		{"de-CH", "DE"},
		{"en", "US"},
		{"", "US"},
		{"fr", "US"},
	}
	for _, tc := range tests {
		if got := Market(tc.code); got != tc.want {
			t.Errorf("Market(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
