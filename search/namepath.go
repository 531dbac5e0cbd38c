package search

import (
	"sort"

	"github.com/omar-hanafy/countrysearch/country"
	"github.com/omar-hanafy/countrysearch/normalize"
	"github.com/omar-hanafy/countrysearch/similarity"
	"github.com/omar-hanafy/countrysearch/substring"
)

// strictHit pairs a matched record with where its query substring was
// found and whether that was at the very start of the search key.
type strictHit struct {
	record    country.Record
	bestIndex int
	isPrefix  bool
}

// scoredHit replaces the (record, score) tuple shared by the short-key and
// fuzzy-fill stages.
type scoredHit struct {
	record country.Record
	score  float64
}

func (f *Finder) namePath(rawQuery string, records []country.Record) []country.Record {
	q := normalize.BuildSearchKey(rawQuery)
	if q == "" {
		return records
	}
	qNoSpaces := normalize.StripSpaces(q)

	strictHits := strictStage(q, qNoSpaces, records)
	var shortHits []scoredHit
	if n := len([]rune(qNoSpaces)); n >= 1 && n <= 3 {
		shortHits = shortKeyStage(qNoSpaces, records)
	}

	result := mergeHits(qNoSpaces, strictHits, shortHits)

	if len(result) >= 8 || len([]rune(q)) <= 2 {
		return truncate(result, f.maxResults)
	}

	result = f.fuzzyFillStage(q, qNoSpaces, records, result)
	return truncate(result, f.maxResults)
}

// strictStage compiles q (and qNoSpaces, reusing the same compiled
// pattern when they're equal) once and scans every record's search keys
// for a literal substring match, ranking prefix matches first, then
// earlier matches, then shorter search keys.
func strictStage(q, qNoSpaces string, records []country.Record) []strictHit {
	compiledQ := substring.Compile(q)
	compiledQNoSpaces := compiledQ
	if qNoSpaces != q {
		compiledQNoSpaces = substring.Compile(qNoSpaces)
	}

	hits := make([]strictHit, 0, len(records))
	for _, r := range records {
		idx1 := compiledQ.FirstIndexIn(r.SearchKey)
		idx2 := -1
		if qNoSpaces != "" {
			idx2 = compiledQNoSpaces.FirstIndexIn(r.SearchKeyNoSpaces)
		}
		if idx1 < 0 && idx2 < 0 {
			continue
		}
		best := idx1
		if best < 0 || (idx2 >= 0 && idx2 < best) {
			best = idx2
		}
		hits = append(hits, strictHit{record: r, bestIndex: best, isPrefix: best == 0})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.isPrefix != b.isPrefix {
			return a.isPrefix
		}
		if a.bestIndex != b.bestIndex {
			return a.bestIndex < b.bestIndex
		}
		return len([]rune(a.record.SearchKey)) < len([]rune(b.record.SearchKey))
	})
	return hits
}

// shortKeyStage only runs for queries whose space-stripped form is 1 to 3
// runes long, matching against each record's abbreviation aliases. Exact
// matches always qualify; a length-3 query is additionally allowed to
// fuzzy-match a length-2 short key via Jaro-Winkler, since that's the one
// case short enough for a single-letter typo to plausibly mean a two-letter
// code.
func shortKeyStage(qNoSpaces string, records []country.Record) []scoredHit {
	n := len([]rune(qNoSpaces))
	threshold := 0.85
	if n <= 2 {
		threshold = 1.0
	}

	hits := make([]scoredHit, 0, len(records))
	for _, r := range records {
		best := 0.0
		for _, key := range r.ShortKeys {
			var score float64
			switch {
			case key == qNoSpaces:
				score = 1.0
			case n == 3 && len([]rune(key)) == 2:
				score = similarity.Compare(qNoSpaces, key, similarity.AlgorithmJaroWinkler)
			default:
				continue
			}
			if score > best {
				best = score
			}
		}
		if best >= threshold {
			hits = append(hits, scoredHit{record: r, score: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	return hits
}

// mergeHits builds the deduplicating, insertion-ordered result: the
// relative order of the strict and short-key stages depends on the length
// of qNoSpaces, since a very short query is dominated by abbreviation
// matches while a longer one is dominated by substring matches.
func mergeHits(qNoSpaces string, strictHits []strictHit, shortHits []scoredHit) []country.Record {
	result := make([]country.Record, 0, len(strictHits)+len(shortHits))
	seen := make(map[string]bool, len(strictHits)+len(shortHits))

	appendStrict := func() {
		for _, h := range strictHits {
			if seen[h.record.ISOCode] {
				continue
			}
			seen[h.record.ISOCode] = true
			result = append(result, h.record)
		}
	}
	appendShort := func() {
		for _, h := range shortHits {
			if seen[h.record.ISOCode] {
				continue
			}
			seen[h.record.ISOCode] = true
			result = append(result, h.record)
		}
	}

	switch n := len([]rune(qNoSpaces)); {
	case n <= 2:
		appendShort()
		appendStrict()
	case n == 3:
		appendStrict()
		appendShort()
	default:
		appendStrict()
	}
	return result
}

// fuzzyFillStage chooses an algorithm and acceptance threshold from the
// query's characteristics, then appends similarity matches for every
// record not already present in result.
func (f *Finder) fuzzyFillStage(q, qNoSpaces string, records, result []country.Record) []country.Record {
	algorithm := fuzzyAlgorithm(q)
	threshold := fuzzyThreshold(q, algorithm)

	present := make(map[string]bool, len(result))
	for _, r := range result {
		present[r.ISOCode] = true
	}

	hits := make([]scoredHit, 0)
	for _, r := range records {
		if present[r.ISOCode] {
			continue
		}
		s1 := f.engine.Compare(q, r.SearchKey, algorithm)
		s2 := 0.0
		if qNoSpaces != "" {
			s2 = f.engine.Compare(qNoSpaces, r.SearchKeyNoSpaces, algorithm)
		}
		score := s1
		if s2 > score {
			score = s2
		}
		if score >= threshold {
			hits = append(hits, scoredHit{record: r, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	for _, h := range hits {
		result = append(result, h.record)
	}
	return result
}

func fuzzyAlgorithm(q string) similarity.Algorithm {
	switch {
	case containsSpace(q):
		return similarity.AlgorithmCosine
	case len([]rune(q)) <= 7:
		return similarity.AlgorithmJaroWinkler
	default:
		return similarity.AlgorithmNGram
	}
}

func fuzzyThreshold(q string, algorithm similarity.Algorithm) float64 {
	n := len([]rune(q))
	switch {
	case n <= 2:
		return 0.999
	case algorithm == similarity.AlgorithmCosine:
		return 0.55
	case n <= 4:
		return 0.75
	case n <= 7:
		return 0.65
	default:
		return 0.55
	}
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}
