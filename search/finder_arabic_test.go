package search

import (
	"testing"

	"github.com/omar-hanafy/countrysearch/country"
)

var arabicSeed = []seedCountry{
	{"EG", "20", "مصر"},
	{"AE", "971", "الإمارات العربية المتحدة"},
	{"OM", "968", "عُمان"},
	{"SA", "966", "السعودية"},
	{"QA", "974", "قطر"},
	{"KW", "965", "الكويت"},
	{"JO", "962", "الأردن"},
}

func buildArabicRecords(t *testing.T) []country.Record {
	t.Helper()
	records := make([]country.Record, 0, len(arabicSeed))
	for _, c := range arabicSeed {
		records = append(records, country.Build(c.iso, c.dial, c.name))
	}
	return records
}

func TestWhereTextArabicExactName(t *testing.T) {
	f := newTestFinder(t)
	records := buildArabicRecords(t)
	got := f.WhereText("مصر", records)
	if firstISO(got) != "EG" {
		t.Fatalf("first result = %q, want EG; results=%v", firstISO(got), got)
	}
}

func TestWhereTextArabicDialCode(t *testing.T) {
	f := newTestFinder(t)
	records := buildArabicRecords(t)
	got := f.WhereText("971", records)
	if firstISO(got) != "AE" {
		t.Fatalf("first result = %q, want AE; results=%v", firstISO(got), got)
	}
}

// TestWhereTextArabicTashkeelStripped checks that the diacritic marks on
// عُمان ("Oman", with a damma over the second letter) don't prevent a query
// typed without them from matching: normalization must strip tashkeel
// before the dispatcher ever compares search keys.
func TestWhereTextArabicTashkeelStripped(t *testing.T) {
	f := newTestFinder(t)
	records := buildArabicRecords(t)
	got := f.WhereText("عمان", records)
	if firstISO(got) != "OM" {
		t.Fatalf("first result = %q, want OM; results=%v", firstISO(got), got)
	}
}
