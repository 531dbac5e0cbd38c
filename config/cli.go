package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CLISettings is the on-disk shape of cmd/countrysearch's optional config
// file. Every field has a sensible zero value, so a missing file is not an
// error; the search library itself never reads files directly, this is
// strictly a demo-application concern.
type CLISettings struct {
	Locale        string `yaml:"locale"`
	MaxResults    int    `yaml:"max_results"`
	NGramSize     int    `yaml:"ngram_size"`
	CacheCapacity int    `yaml:"cache_capacity"`
	LogLevel      string `yaml:"log_level"`
}

// LoadCLISettings reads and parses a YAML settings file at path. A path
// that does not exist yields zero-valued CLISettings and a nil error.
func LoadCLISettings(path string) (CLISettings, error) {
	var settings CLISettings

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return settings, nil
}
