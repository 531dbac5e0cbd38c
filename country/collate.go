package country

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator provides a locale-independent (root-locale) ordering for
// display-name sorting. A root collator sorts case- and accent-
// insensitively by default, which matches how a country picker wants
// "Ireland" and "iceland" to interleave regardless of the host's active
// locale.
var collator = collate.New(language.Und)

func collateLess(a, b string) bool {
	return collator.CompareString(a, b) < 0
}
