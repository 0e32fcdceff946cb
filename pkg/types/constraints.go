package types

import "strings"

// Planning modes.
const (
	ModePantryFirstStrict = "pantry_first_strict"
	ModeFreeform          = "freeform"
)

// Diet codes, ordered from most to least restrictive. A recipe passes a
// diet filter when its code is at most as permissive as the wanted code
// (veg fits an eggtarian request; non-veg does not).
const (
	DietVeg       = "veg"
	DietEggtarian = "eggtarian"
	DietNonVeg    = "non-veg"
)

// dietRank orders diet codes by permissiveness.
var dietRank = map[string]int{
	DietVeg:       0,
	DietEggtarian: 1,
	DietNonVeg:    2,
}

// dietAliases folds common diet label spellings onto the canonical codes.
var dietAliases = map[string]string{
	"veg":             DietVeg,
	"vegetarian":      DietVeg,
	"veggie":          DietVeg,
	"eggtarian":       DietEggtarian,
	"eggetarian":      DietEggtarian,
	"ovo-vegetarian":  DietEggtarian,
	"ovo":             DietEggtarian,
	"egg":             DietEggtarian,
	"non-veg":         DietNonVeg,
	"nonveg":          DietNonVeg,
	"non-vegetarian":  DietNonVeg,
	"nonvegetarian":   DietNonVeg,
	"meat":            DietNonVeg,
}

// NormalizeDiet maps a diet label to its canonical code. Unknown labels
// pass through lowercased so exact-match filtering still applies.
func NormalizeDiet(label string) string {
	if label == "" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	if canon, ok := dietAliases[s]; ok {
		return canon
	}
	return s
}

// DietAllows reports whether a recipe with recipeDiet satisfies a request
// for wanted. An empty wanted allows everything; unknown labels fall back
// to exact match.
func DietAllows(recipeDiet, wanted string) bool {
	w := NormalizeDiet(wanted)
	if w == "" {
		return true
	}
	r := NormalizeDiet(recipeDiet)
	rRank, rKnown := dietRank[r]
	wRank, wKnown := dietRank[w]
	if !rKnown || !wKnown {
		return r == w
	}
	return rRank <= wRank
}

// Constraints is the session-scoped planning configuration. It is replaced
// wholesale on every update, never patched field by field.
type Constraints struct {
	Mode         string `json:"mode"`
	AllowRepeats bool   `json:"allow_repeats"`
	Cuisine      string `json:"cuisine,omitempty"`
	Diet         string `json:"diet,omitempty"`
	MaxTime      int    `json:"max_time,omitempty"`
	SubPolicy    string `json:"sub_policy,omitempty"`
}

// DefaultConstraints returns the constraints used before any SetConstraints
// call: strict pantry-first with repeats allowed.
func DefaultConstraints() Constraints {
	return Constraints{Mode: ModePantryFirstStrict, AllowRepeats: true}
}

// NormalizeMode folds accepted mode spellings onto the canonical constants.
func NormalizeMode(mode string) string {
	s := strings.ToLower(strings.TrimSpace(mode))
	s = strings.ReplaceAll(s, "-", "_")
	switch s {
	case "pantry_first_strict", "pantry_first", "strict":
		return ModePantryFirstStrict
	case "freeform", "free_form":
		return ModeFreeform
	}
	return s
}

// Validate checks the constraints record. Mode must be one of the known
// planning modes; MaxTime must not be negative.
func (c Constraints) Validate() error {
	switch NormalizeMode(c.Mode) {
	case ModePantryFirstStrict, ModeFreeform:
	default:
		return ErrInvalidMode
	}
	if c.MaxTime < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
