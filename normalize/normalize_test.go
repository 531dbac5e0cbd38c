package normalize

import "testing"

func TestBuildSearchKeyDiacritics(t *testing.T) {
	cases := map[string]string{
		"é": "e",
		"ü": "u",
		"ç": "c",
		"ã": "a",
		"ø": "o",
		"ł": "l",
	}
	for in, want := range cases {
		if got := BuildSearchKey(in); got != want {
			t.Errorf("BuildSearchKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildSearchKeyEmpty(t *testing.T) {
	if got := BuildSearchKey(""); got != "" {
		t.Errorf("BuildSearchKey(\"\") = %q, want empty", got)
	}
	if got := BuildSearchKey("!!! ...,,,"); got != "" {
		t.Errorf("BuildSearchKey(punctuation only) = %q, want empty", got)
	}
}

func TestBuildSearchKeyIdempotent(t *testing.T) {
	inputs := []string{"Côte d'Ivoire", "São Tomé and Príncipe", "  Germany  ", "مصر", "عُمان"}
	for _, in := range inputs {
		once := BuildSearchKey(in)
		twice := BuildSearchKey(once)
		if once != twice {
			t.Errorf("BuildSearchKey not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestBuildSearchKeyInvariants(t *testing.T) {
	key := BuildSearchKey("  Saint   Kitts & Nevis!! ")
	if key != "saint kitts nevis" {
		t.Fatalf("got %q", key)
	}
	for _, r := range key {
		if r != ' ' && !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			t.Fatalf("search key %q contains disallowed rune %q", key, r)
		}
	}
}

func TestBuildSearchKeyArabicTashkeel(t *testing.T) {
	// tashkeel (diacritics) stripped: عُمان -> عمان
	got := BuildSearchKey("عُمان")
	want := BuildSearchKey("عمان")
	if got != want {
		t.Errorf("tashkeel not stripped: got %q want %q", got, want)
	}
}

func TestBuildSearchKeyArabicVariants(t *testing.T) {
	// alef variants collapse to bare alef
	if BuildSearchKey("أحمد") != BuildSearchKey("احمد") {
		t.Error("alef-hamza variant did not collapse to bare alef")
	}
}

func TestStripSpaces(t *testing.T) {
	if got := StripSpaces("united states"); got != "unitedstates" {
		t.Errorf("got %q", got)
	}
	if got := StripSpaces("chad"); got != "chad" {
		t.Errorf("got %q", got)
	}
}
