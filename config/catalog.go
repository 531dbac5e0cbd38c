// Package config loads the on-disk data the search library itself never
// reads directly: a locale's country list, and cmd/countrysearch's
// tunable settings. Country lists are embedded YAML, lazy-loaded once and
// indexed by ISO code.
package config

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed assets/*.yaml
var assets embed.FS

// countryEntry mirrors one record of assets/countries-en.yaml /
// countries-ar.yaml.
type countryEntry struct {
	Alpha2 string `yaml:"alpha2"`
	Dial   string `yaml:"dial"`
	Name   string `yaml:"name"`
}

// Catalog is a locale's country list, loaded lazily from embedded YAML and
// cached after first access. It implements country.Resolver.
type Catalog struct {
	asset string

	once    sync.Once
	err     error
	byAlpha map[string]countryEntry
	order   []string
}

// NewCatalog returns a Catalog that lazily loads assetName (e.g.
// "countries-en.yaml") from the embedded assets directory on first use.
func NewCatalog(assetName string) *Catalog {
	return &Catalog{asset: assetName}
}

func (c *Catalog) load() error {
	c.once.Do(func() {
		data, err := assets.ReadFile("assets/" + c.asset)
		if err != nil {
			c.err = fmt.Errorf("config: read embedded asset %s: %w", c.asset, err)
			return
		}

		var parsed struct {
			Countries []countryEntry `yaml:"countries"`
		}
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			c.err = fmt.Errorf("config: parse %s: %w", c.asset, err)
			return
		}

		byAlpha := make(map[string]countryEntry, len(parsed.Countries))
		order := make([]string, 0, len(parsed.Countries))
		for _, entry := range parsed.Countries {
			alpha2 := strings.ToUpper(entry.Alpha2)
			if alpha2 == "" {
				continue
			}
			byAlpha[alpha2] = entry
			order = append(order, alpha2)
		}
		c.byAlpha = byAlpha
		c.order = order
	})
	return c.err
}

// ISOCodes returns every alpha-2 code the catalog knows about, in the order
// the source YAML lists them. Returns nil if the embedded asset fails to
// load or parse; callers that need to distinguish "empty" from "failed to
// load" should call Err after ISOCodes.
func (c *Catalog) ISOCodes() []string {
	if err := c.load(); err != nil {
		return nil
	}
	return c.order
}

// Err reports whether the embedded asset failed to load or parse.
func (c *Catalog) Err() error {
	return c.load()
}

// DisplayName implements country.Resolver.
func (c *Catalog) DisplayName(isoCode string) string {
	_ = c.load()
	return c.byAlpha[strings.ToUpper(isoCode)].Name
}

// DialCode implements country.Resolver.
func (c *Catalog) DialCode(isoCode string) string {
	_ = c.load()
	return c.byAlpha[strings.ToUpper(isoCode)].Dial
}
