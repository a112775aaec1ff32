package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// NamingRules is the optional naming.toml file controlling which identifiers
// the rename engine leaves alone.
type NamingRules struct {
	// Excluded lists short or conventionally-terse identifiers that should
	// never be suggested for renaming, e.g. sum, idx, tmp.
	Excluded []string `toml:"excluded"`
}

// DefaultNamingRules returns the built-in exclusion list. The list exists to
// avoid noisy suggestions on conventionally-terse names and can be replaced
// entirely by a naming.toml file.
func DefaultNamingRules() *NamingRules {
	return &NamingRules{
		Excluded: []string{"sum", "idx", "tmp", "err", "num", "val", "obj", "arr", "fn"},
	}
}

// LoadNamingRules reads the TOML naming rules at path. A missing file yields
// the defaults; a malformed file is an error.
func LoadNamingRules(path string) (*NamingRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultNamingRules(), nil
		}
		return nil, fmt.Errorf("failed to read naming rules: %w", err)
	}

	rules := &NamingRules{}
	if err := toml.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse naming rules: %w", err)
	}
	return rules, nil
}

// ExclusionSet returns the exclusions as a set for candidate filtering.
func (r *NamingRules) ExclusionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Excluded))
	for _, name := range r.Excluded {
		set[name] = struct{}{}
	}
	return set
}
