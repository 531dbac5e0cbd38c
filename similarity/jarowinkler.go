package similarity

import "github.com/antzucaro/matchr"

// jaroWinkler wraps the matchr library's Jaro-Winkler implementation:
// matchr already implements the classical algorithm with the standard 0.1
// prefix scale and 4-rune prefix cap, so there is no value in
// reimplementing it natively.
//
// longTolerance is left false: that flag extends the prefix bonus to long
// strings past the classical Winkler cutoff, which country names don't
// need.
func jaroWinkler(a, b string) float64 {
	const longTolerance = false
	return matchr.JaroWinkler(a, b, longTolerance)
}
