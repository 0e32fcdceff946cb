package types

// UnitFamily is the normalized unit bucket for a pantry quantity. All
// finer unit spellings and scales fold into one of these three.
type UnitFamily string

const (
	UnitCount UnitFamily = "count"
	UnitGram  UnitFamily = "g"
	UnitMilli UnitFamily = "ml"
)

// CanonicalIdentity is the sole matching key for an ingredient across
// recipes and pantry: a canonical name plus its unit family.
type CanonicalIdentity struct {
	Name string     `json:"name"`
	Unit UnitFamily `json:"unit"`
}

// PantryEntry is one on-hand quantity in the resource ledger. Entries at
// zero are deleted, never stored.
type PantryEntry struct {
	Item     string     `json:"item"`
	Unit     UnitFamily `json:"unit"`
	Quantity int64      `json:"quantity"`
}

// Identity returns the canonical key for the entry.
func (e PantryEntry) Identity() CanonicalIdentity {
	return CanonicalIdentity{Name: e.Item, Unit: e.Unit}
}

// RequirementLine is one resolved ingredient cost of a recipe: canonical
// item, unit family, and the base-unit quantity needed.
type RequirementLine struct {
	Item     string     `json:"item"`
	Unit     UnitFamily `json:"unit"`
	Quantity int64      `json:"quantity"`
}

// Identity returns the canonical key for the requirement line.
func (l RequirementLine) Identity() CanonicalIdentity {
	return CanonicalIdentity{Name: l.Item, Unit: l.Unit}
}
