// Package main is a terminal demo of package search: it loads a locale's
// country list, builds records once, then re-runs WhereText on every line
// of stdin input, rendering a ranked, column-aligned result table.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/omar-hanafy/countrysearch/config"
	"github.com/omar-hanafy/countrysearch/country"
	"github.com/omar-hanafy/countrysearch/internal/obslog"
	"github.com/omar-hanafy/countrysearch/search"
	"github.com/omar-hanafy/countrysearch/similarity"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demoFavoriteISOCodes is a hard-coded stand-in for a host application's
// per-user favorites list, used only to exercise Finder.FirstMatch in
// -first mode.
var demoFavoriteISOCodes = []string{"US", "GB", "CA", "AU"}

func run(args []string) error {
	fs := flag.NewFlagSet("countrysearch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	locale := fs.String("locale", "en", "Country list locale (en|ar)")
	settingsPath := fs.String("config", "", "Optional path to a YAML settings file")
	maxResults := fs.Int("max-results", 0, "Override max results (0 keeps the config/default value)")
	firstOnly := fs.Bool("first", false, "Show only the first match, preferring a hard-coded favorites list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.LoadCLISettings(*settingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if settings.Locale == "" {
		settings.Locale = *locale
	}
	if *maxResults > 0 {
		settings.MaxResults = *maxResults
	}

	logger, err := obslog.New(obslog.Config{Service: "countrysearch", Level: settings.LogLevel})
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	assetName := "countries-en.yaml"
	if settings.Locale == "ar" {
		assetName = "countries-ar.yaml"
	}
	catalog := config.NewCatalog(assetName)
	if err := catalog.Err(); err != nil {
		return fmt.Errorf("loading %s catalog: %w", settings.Locale, err)
	}

	records := search.BuildRecords(catalog, catalog.ISOCodes())
	logger.Info("loaded country catalog",
		zap.String("locale", settings.Locale),
		zap.Int("countries", len(records)),
	)

	finder, err := search.NewFinder(search.Config{
		MaxResults: settings.MaxResults,
		Similarity: similarity.Options{
			NGramSize:     settings.NGramSize,
			CacheCapacity: settings.CacheCapacity,
		},
		Logger: logger.WithComponent("finder"),
	})
	if err != nil {
		return fmt.Errorf("building finder: %w", err)
	}

	favorites := filterByISOCodes(records, demoFavoriteISOCodes)
	return repl(finder, records, favorites, *firstOnly)
}

func filterByISOCodes(records []country.Record, isoCodes []string) []country.Record {
	want := make(map[string]bool, len(isoCodes))
	for _, code := range isoCodes {
		want[code] = true
	}
	out := make([]country.Record, 0, len(isoCodes))
	for _, r := range records {
		if want[r.ISOCode] {
			out = append(out, r)
		}
	}
	return out
}

func repl(finder *search.Finder, records, favorites []country.Record, firstOnly bool) error {
	fmt.Println("countrysearch demo. Type a query and press enter; empty line to exit.")
	if firstOnly {
		fmt.Println("(-first mode: showing FirstMatch against favorites, falling back to the full list)")
	}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := scanner.Text()
		if query == "" {
			break
		}
		if firstOnly {
			match := finder.FirstMatch(query, favorites, records)
			if match == nil {
				fmt.Println("(no match)")
				continue
			}
			renderTable([]country.Record{*match})
			continue
		}
		hits := finder.WhereText(query, records)
		renderTable(hits)
	}
	return scanner.Err()
}

func renderTable(hits []country.Record) {
	if len(hits) == 0 {
		fmt.Println("(no matches)")
		return
	}

	nameWidth := len("Country")
	for _, r := range hits {
		if w := runewidth.StringWidth(r.DisplayName); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Printf("%-4s %-*s %s\n", "ISO", nameWidth, "Country", "Dial")
	for _, r := range hits {
		pad := nameWidth - runewidth.StringWidth(r.DisplayName)
		if pad < 0 {
			pad = 0
		}
		fmt.Printf("%-4s %s%s +%s\n", r.ISOCode, r.DisplayName, spaces(pad), r.DialCode)
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
