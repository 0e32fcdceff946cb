// Package mirror loads the unit-mirror rule table from YAML
// configuration. Rules keep alternate-unit views of the same physical
// item synchronized in the ledger.
package mirror

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prakashnalubolu/meal-prep/internal/canon"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// ruleFile is the on-disk shape of alt_units.yaml.
type ruleFile struct {
	Rules []types.MirrorRule `yaml:"rules"`
}

// DefaultRulesYAML is the alt_units.yaml content written on first run.
// Factors are the conversion heuristics for countable produce that also
// appears by weight.
const DefaultRulesYAML = `# Unit mirror rules. Each rule keeps an alternate-unit view of the same
# item in sync: a mutation on (item, from_unit) applies a matching
# converted delta on (item, to_unit), rounded to rounding_step.
rules:
  - item: spinach
    from_unit: count
    to_unit: g
    factor: 125
    rounding_step: 10
  - item: spinach
    from_unit: g
    to_unit: count
    factor: 0.008
    rounding_step: 1
`

// LoadRules reads and validates the mirror rule table at path. Item names
// are canonicalized so rules match ledger keys. A missing file is not an
// error: mirroring is optional configuration.
func LoadRules(path string) ([]types.MirrorRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading mirror rules: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes and validates a YAML rule table.
func ParseRules(data []byte) ([]types.MirrorRule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing mirror rules: %w", err)
	}
	rules := make([]types.MirrorRule, 0, len(f.Rules))
	for i, r := range f.Rules {
		r.Item = canon.Name(r.Item)
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("mirror rule %d (%s): %w", i, r.Item, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
