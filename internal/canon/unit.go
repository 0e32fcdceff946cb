package canon

import (
	"strings"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// unitFold maps a unit label spelling to its unit family and the scale
// factor folded into the quantity. Label and scale are normalized together
// in one step; renaming a label without rescaling its quantity would
// silently corrupt every downstream comparison.
type unitFold struct {
	family types.UnitFamily
	factor int64
}

var unitFolds = map[string]unitFold{
	"g":          {types.UnitGram, 1},
	"gram":       {types.UnitGram, 1},
	"grams":      {types.UnitGram, 1},
	"gm":         {types.UnitGram, 1},
	"gms":        {types.UnitGram, 1},
	"kg":         {types.UnitGram, 1000},
	"kilo":       {types.UnitGram, 1000},
	"kilos":      {types.UnitGram, 1000},
	"kilogram":   {types.UnitGram, 1000},
	"kilograms":  {types.UnitGram, 1000},
	"ml":         {types.UnitMilli, 1},
	"milliliter": {types.UnitMilli, 1},
	"milliliters": {types.UnitMilli, 1},
	"millilitre":  {types.UnitMilli, 1},
	"millilitres": {types.UnitMilli, 1},
	"l":       {types.UnitMilli, 1000},
	"liter":   {types.UnitMilli, 1000},
	"liters":  {types.UnitMilli, 1000},
	"litre":   {types.UnitMilli, 1000},
	"litres":  {types.UnitMilli, 1000},
	"count":   {types.UnitCount, 1},
	"pc":      {types.UnitCount, 1},
	"pcs":     {types.UnitCount, 1},
	"piece":   {types.UnitCount, 1},
	"pieces":  {types.UnitCount, 1},
}

// Quantity folds a raw quantity and unit label into the base quantity and
// unit family in a single step: "1 kilo" yields 1000 in the gram family,
// never 1. Unrecognized labels fold to count with factor 1.
func Quantity(qty int64, rawUnit string) (int64, types.UnitFamily) {
	u := strings.ToLower(strings.TrimSpace(rawUnit))
	u = strings.TrimSuffix(u, ".")
	if fold, ok := unitFolds[u]; ok {
		return qty * fold.factor, fold.family
	}
	return qty, types.UnitCount
}

// Family returns the unit family a label folds into, without a quantity.
// Use only where no quantity exists to rescale (e.g. whole-entry removal).
func Family(rawUnit string) types.UnitFamily {
	_, fam := Quantity(0, rawUnit)
	return fam
}

// Identity returns the canonical matching key for a raw item name and
// unit label.
func Identity(rawName, rawUnit string) types.CanonicalIdentity {
	return types.CanonicalIdentity{Name: Name(rawName), Unit: Family(rawUnit)}
}
