// Package search implements the query dispatcher: given a raw, possibly
// typo-laden query and a list of country.Record values, it classifies the
// query, runs the dial-code, strict-substring, short-key, and fuzzy-fill
// stages in order, then merges, ranks, deduplicates by ISO code, and caps
// the result.
package search

import (
	"sort"
	"strings"

	"github.com/omar-hanafy/countrysearch/country"
	"github.com/omar-hanafy/countrysearch/internal/obslog"
	"github.com/omar-hanafy/countrysearch/similarity"
)

// Finder ranks country.Record values against a query. It is immutable
// after construction except for its internal similarity cache; a Finder is
// safe to share across goroutines only to the extent that package
// similarity's cache is (it is mutex-protected), but the natural usage
// pattern is one Finder per UI thread, re-queried on every keystroke.
type Finder struct {
	maxResults      int
	strictAlgorithm StrictAlgorithm
	engine          *similarity.Engine
	logger          *obslog.Logger
}

// BuildRecords builds one Record per ISO code via resolver, sorted by
// display name under a locale-independent comparator. It is a thin
// re-export of country.BuildRecords so callers that only import package
// search still get the full public surface.
func BuildRecords(resolver country.Resolver, isoCodes []string) []country.Record {
	return country.BuildRecords(resolver, isoCodes)
}

// WhereText is the sole query-time entry point. It is deterministic —
// repeated calls with the same rawQuery and records return identical
// results in identical order — and total: it never panics or errors, and
// degenerates gracefully to "return everything" on empty or
// punctuation-only queries.
func (f *Finder) WhereText(rawQuery string, records []country.Record) []country.Record {
	trimmedForDigits := rawQuery
	if strings.HasPrefix(trimmedForDigits, "+") {
		trimmedForDigits = trimmedForDigits[1:]
	}
	trimmedForDigits = strings.TrimSpace(trimmedForDigits)

	if trimmedForDigits == "" {
		return records
	}

	if isNonNegativeInteger(trimmedForDigits) {
		return f.dialCodePath(trimmedForDigits, records)
	}

	return f.namePath(rawQuery, records)
}

// FirstMatch returns the first result WhereText finds among favorites, or
// else the first result over the full record set.
func (f *Finder) FirstMatch(rawQuery string, favorites, records []country.Record) *country.Record {
	if hits := f.WhereText(rawQuery, favorites); len(hits) > 0 {
		return &hits[0]
	}
	if hits := f.WhereText(rawQuery, records); len(hits) > 0 {
		return &hits[0]
	}
	return nil
}

func isNonNegativeInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// dialCodePath keeps every record whose DialCode contains query as a
// substring, then stable-sorts so dial codes that start with query precede
// those where it merely appears later.
func (f *Finder) dialCodePath(query string, records []country.Record) []country.Record {
	hits := make([]country.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.DialCode, query) {
			hits = append(hits, r)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		iPrefix := strings.HasPrefix(hits[i].DialCode, query)
		jPrefix := strings.HasPrefix(hits[j].DialCode, query)
		return iPrefix && !jPrefix
	})
	return truncate(hits, f.maxResults)
}

func truncate(records []country.Record, max int) []country.Record {
	if len(records) > max {
		return records[:max]
	}
	return records
}
