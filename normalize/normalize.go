// Package normalize turns arbitrary display strings and user queries into
// canonical search keys: Unicode case folding, diacritic stripping, Arabic
// script folding, and punctuation/whitespace collapse.
//
// The pipeline is always applied in full regardless of the input script —
// the Arabic-specific steps are no-ops on non-Arabic code points, so there
// is no need to detect script before normalizing.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes to NFD, drops nonspacing combining marks
// (category Mn), and recomposes to NFC. This collapses "é"->"e", "ü"->"u",
// "ç"->"c", "ã"->"a" and similar canonically-decomposable Latin letters.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// strokeLetterFolder maps "ø"->"o" and "ł"->"l" (and their capitals), which
// have no canonical decomposition and so survive diacriticStripper. Other
// letters without a decomposition (e.g. "ß", "æ") pass through unchanged.
var strokeLetterFolder = strings.NewReplacer("ø", "o", "Ø", "O", "ł", "l", "Ł", "L")

// stripDiacritics removes combining diacritical marks from Latin-script text.
func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		out = s
	}
	return strokeLetterFolder.Replace(out)
}

// Arabic code point ranges and substitutions per the normalization pipeline.
const (
	tatweel = 0x0640
)

func isArabicDiacritic(r rune) bool {
	switch {
	case r >= 0x0610 && r <= 0x061A:
		return true
	case r >= 0x064B && r <= 0x065F:
		return true
	case r == 0x0670:
		return true
	case r >= 0x06D6 && r <= 0x06ED:
		return true
	case r == tatweel:
		return true
	}
	return false
}

// foldArabicRune applies the spec's Arabic letter-variant collapsing to a
// single rune; it returns the rune unchanged for anything outside the
// handled set (including non-Arabic code points, making it a safe no-op).
func foldArabicRune(r rune) rune {
	switch r {
	case 0x0622, 0x0623, 0x0625, 0x0671: // alef variants -> alef
		return 0x0627
	case 0x0649: // alef maksura -> yaa
		return 0x064A
	case 0x0629: // taa marbuta -> haa
		return 0x0647
	case 0x0624: // waw with hamza -> waw
		return 0x0648
	case 0x0626: // yaa with hamza -> yaa
		return 0x064A
	}
	return r
}

// normalizeArabic strips Arabic diacritics/tatweel and folds letter variants.
// It is a no-op on code points outside the Arabic block.
func normalizeArabic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isArabicDiacritic(r) {
			continue
		}
		b.WriteRune(foldArabicRune(r))
	}
	return b.String()
}

// stripPunctuation replaces every code point that is not a Unicode letter,
// Unicode number, or whitespace with a single space.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)
}

// collapseWhitespace replaces runs of whitespace with a single U+0020 and
// trims leading/trailing space.
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// BuildSearchKey is the normalizer's sole public entry point. It is
// deterministic and pure: identical input always yields identical output,
// and it never fails — empty input yields empty output.
//
// Pipeline order: diacritic stripping, case folding, Arabic normalization,
// punctuation stripping, whitespace collapse.
func BuildSearchKey(input string) string {
	s := stripDiacritics(input)
	s = strings.ToLower(s)
	s = normalizeArabic(s)
	s = stripPunctuation(s)
	s = collapseWhitespace(s)
	return s
}

// StripSpaces removes every U+0020 from an already-built search key,
// producing the "no spaces" variant used throughout the search dispatcher.
func StripSpaces(key string) string {
	if !strings.Contains(key, " ") {
		return key
	}
	return strings.ReplaceAll(key, " ", "")
}
