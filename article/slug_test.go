package article

import "testing"

func TestCanonicalSlug(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"single-action-handlers", "single-action-handlers"},
		{"  Single-Action-Handlers ", "single-action-handlers"},
		{"Value Objects", "value-objects"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := CanonicalSlug(tc.input); got != tc.want {
			t.Fatalf("CanonicalSlug(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	if !IsValidSlug("async-jobs") {
		t.Fatal("expected hyphenated lowercase slug to be valid")
	}
	if IsValidSlug("Async Jobs!") {
		t.Fatal("expected spaces and punctuation to be invalid")
	}
}
