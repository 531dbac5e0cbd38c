// Package country builds the immutable searchable entities the finder
// ranks: one Record per country, holding its normalized search keys and
// abbreviation aliases alongside the raw display data.
package country

import (
	"sort"
	"strings"

	"github.com/omar-hanafy/countrysearch/normalize"
)

// Record is the search core's CountryRecord: an immutable, by-reference
// searchable entity built once per (locale, country list) snapshot. The
// finder never mutates a Record.
type Record struct {
	// ISOCode is the two-letter ISO-3166 alpha-2 identifier. Uniqueness key.
	ISOCode string
	// DialCode is a non-empty string of decimal digits, no leading '+'.
	DialCode string
	// DisplayName is the localized, human-readable name as supplied by the
	// host's name resolver.
	DisplayName string

	// SearchKey is the normalized form of DisplayName.
	SearchKey string
	// SearchKeyNoSpaces is SearchKey with all spaces removed.
	SearchKeyNoSpaces string
	// ShortKeys is the insertion-ordered set of abbreviation aliases: the
	// lowercased ISO code, an initialism when SearchKey has >=2 tokens with
	// >=2 initials, and any curated extras for ISOCode.
	ShortKeys []string
}

// Resolver maps an ISO alpha-2 code to its localized display name and dial
// code. Implementations are external collaborators: localization tables
// and phone-number metadata are consumed as opaque data, never produced by
// this package.
type Resolver interface {
	DisplayName(isoCode string) string
	DialCode(isoCode string) string
}

// Build constructs a single Record from raw (iso, dial, name) inputs. It
// never fails: degenerate inputs (empty dial code, empty name) are
// permitted and simply never match the corresponding search stage.
func Build(iso, dial, name string) Record {
	searchKey := normalize.BuildSearchKey(name)
	return Record{
		ISOCode:           iso,
		DialCode:          dial,
		DisplayName:       name,
		SearchKey:         searchKey,
		SearchKeyNoSpaces: normalize.StripSpaces(searchKey),
		ShortKeys:         buildShortKeys(iso, searchKey),
	}
}

// BuildRecords builds one Record per ISO code via resolver, then sorts the
// result by DisplayName under a locale-independent comparator for a
// deterministic initial presentation.
func BuildRecords(resolver Resolver, isoCodes []string) []Record {
	records := make([]Record, 0, len(isoCodes))
	for _, iso := range isoCodes {
		records = append(records, Build(iso, resolver.DialCode(iso), resolver.DisplayName(iso)))
	}
	SortByDisplayName(records)
	return records
}

// buildShortKeys assembles the insertion-ordered, deduplicated short-key set
// for one record: lowercased ISO code, initialism (when applicable), then
// curated extras. No empty string and no duplicate ever appears.
func buildShortKeys(iso, searchKey string) []string {
	keys := make([]string, 0, 4)
	seen := make(map[string]bool, 4)

	add := func(k string) {
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		keys = append(keys, k)
	}

	add(strings.ToLower(iso))

	if tokens := strings.Fields(searchKey); len(tokens) >= 2 {
		var initials strings.Builder
		for _, tok := range tokens {
			r := []rune(tok)
			if len(r) == 0 {
				continue
			}
			initials.WriteRune(r[0])
		}
		if initialism := initials.String(); len([]rune(initialism)) >= 2 {
			add(initialism)
		}
	}

	for _, extra := range shortKeyExtras[strings.ToUpper(iso)] {
		add(extra)
	}

	return keys
}

// SortByDisplayName orders records by DisplayName using a locale-independent
// comparator, in place.
func SortByDisplayName(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return collateLess(records[i].DisplayName, records[j].DisplayName)
	})
}
