package types

// MirrorRule keeps an alternate-unit view of the same physical item in
// sync with the primary entry (e.g. a countable bunch and its gram
// equivalent). Rules are static configuration consumed by the ledger.
type MirrorRule struct {
	Item     string     `json:"item" yaml:"item"`
	FromUnit UnitFamily `json:"from_unit" yaml:"from_unit"`
	ToUnit   UnitFamily `json:"to_unit" yaml:"to_unit"`
	Factor   float64    `json:"factor" yaml:"factor"`
	Step     int64      `json:"rounding_step" yaml:"rounding_step"`
}

// validFamilies is the set of recognized unit families.
var validFamilies = map[UnitFamily]bool{
	UnitCount: true,
	UnitGram:  true,
	UnitMilli: true,
}

// Validate checks that the rule can be applied: known units, distinct
// from/to families, a positive factor, and a non-negative step.
func (r MirrorRule) Validate() error {
	if r.Item == "" {
		return ErrMirrorRule
	}
	if !validFamilies[r.FromUnit] || !validFamilies[r.ToUnit] {
		return ErrMirrorRule
	}
	if r.FromUnit == r.ToUnit {
		return ErrMirrorRule
	}
	if r.Factor <= 0 {
		return ErrMirrorRule
	}
	if r.Step < 0 {
		return ErrMirrorRule
	}
	return nil
}
