package griddict

import "testing"

func TestBuildNormalizesAndFilters(t *testing.T) {
	dict := Build([]string{"  cats ", "DOGS", "at", "cats", "ca7s", "ants"})

	testCases := []struct {
		description string
		word        string
		want        bool
	}{
		{"trimmed and lowercased input is indexed", "CATS", true},
		{"already-uppercase input is indexed", "DOGS", true},
		{"below minimum length is dropped", "AT", false},
		{"non-letter byte is dropped", "CA7S", false},
		{"duplicate insert is idempotent", "CATS", true},
		{"never-inserted word is absent", "ANTSY", false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := dict.Contains(tc.word); got != tc.want {
				t.Errorf("Contains(%q) = %v, want %v", tc.word, got, tc.want)
			}
		})
	}

	if got := dict.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3 (CATS, DOGS, ANTS)", got)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	dict := Build(nil)
	if dict.Len() != 0 {
		t.Fatalf("empty Build should yield Len() == 0, got %d", dict.Len())
	}
	if dict.Contains("ANYTHING") {
		t.Fatal("empty dictionary must answer Contains false")
	}
	if dict.HasPrefix("A") {
		t.Fatal("empty dictionary must answer HasPrefix false")
	}
}

func TestHasPrefix(t *testing.T) {
	dict := Build([]string{"cats", "catsup", "dogs"})

	testCases := []struct {
		description string
		prefix      string
		want        bool
	}{
		{"prefix of one word", "CAT", true},
		{"prefix shared by two words", "CATS", true},
		{"exact word is also a valid prefix", "CATSUP", true},
		{"unrelated prefix", "ZZ", false},
		{"empty prefix matches any non-empty dictionary", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := dict.HasPrefix(tc.prefix); got != tc.want {
				t.Errorf("HasPrefix(%q) = %v, want %v", tc.prefix, got, tc.want)
			}
		})
	}
}

func TestReloadReplacesContents(t *testing.T) {
	dict := Build([]string{"cats", "dogs"})
	if !dict.Contains("CATS") {
		t.Fatal("setup: expected CATS before reload")
	}

	dict.Reload([]string{"birds"})

	if dict.Contains("CATS") {
		t.Fatal("Reload should drop words not present in the new input")
	}
	if !dict.Contains("BIRDS") {
		t.Fatal("Reload should index the new input")
	}
}

func TestBlacklistIndependentOfDictionary(t *testing.T) {
	bl := NewBlacklist()
	if bl.Contains("CATS") {
		t.Fatal("fresh blacklist should contain nothing")
	}
	bl.Add("cats")
	if !bl.Contains("CATS") {
		t.Fatal("Add should normalize to uppercase before storing")
	}
	if bl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bl.Len())
	}
	bl.Clear()
	if bl.Len() != 0 {
		t.Fatal("Clear should empty the blacklist")
	}
}

func TestBlacklistIgnoresUnindexableWords(t *testing.T) {
	bl := NewBlacklist()
	bl.Add("at")
	if bl.Len() != 0 {
		t.Fatal("words shorter than minWordLen should not be added")
	}
}
