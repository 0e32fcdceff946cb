package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

func TestRequirements(t *testing.T) {
	r := &types.Recipe{
		Name: "Test",
		Ingredients: []types.Ingredient{
			{Item: "rice", Quantity: 2, Unit: "kg"},
			{Item: "Green Chillies", Quantity: 3, Unit: "count"},
			{Item: "", Quantity: 5, Unit: "g"},
			{Item: "salt", Quantity: 0, Unit: "g"},
			{Item: "water", Quantity: -1, Unit: "ml"},
		},
	}

	lines := Requirements(r)
	assert.Len(t, lines, 2, "blank and non-positive lines are dropped")

	assert.Equal(t, "rice", lines[0].Item)
	assert.Equal(t, types.UnitGram, lines[0].Unit)
	assert.Equal(t, int64(2000), lines[0].Quantity, "kg folds to grams")

	assert.Equal(t, "green chili", lines[1].Item)
	assert.Equal(t, types.UnitCount, lines[1].Unit)
}

func TestShadowCoversAndDeduct(t *testing.T) {
	rice := types.CanonicalIdentity{Name: "rice", Unit: types.UnitGram}
	egg := types.CanonicalIdentity{Name: "egg", Unit: types.UnitCount}
	shadow := ShadowPantry{rice: 300, egg: 2}

	needs := []types.RequirementLine{
		{Item: "rice", Unit: types.UnitGram, Quantity: 200},
		{Item: "egg", Unit: types.UnitCount, Quantity: 2},
	}
	assert.True(t, shadow.Covers(needs))

	shadow.Deduct(needs)
	assert.Equal(t, int64(100), shadow[rice])
	_, ok := shadow[egg]
	assert.False(t, ok, "zeroed entries are deleted")

	assert.False(t, shadow.Covers(needs), "depleted shadow no longer covers")
}

func TestShadowCoversAggregatesDuplicateLines(t *testing.T) {
	rice := types.CanonicalIdentity{Name: "rice", Unit: types.UnitGram}
	shadow := ShadowPantry{rice: 300}

	// Two lines on the same identity must be summed, not checked apart.
	needs := []types.RequirementLine{
		{Item: "rice", Unit: types.UnitGram, Quantity: 200},
		{Item: "rice", Unit: types.UnitGram, Quantity: 200},
	}
	assert.False(t, shadow.Covers(needs))
}

func TestShadowTightness(t *testing.T) {
	rice := types.CanonicalIdentity{Name: "rice", Unit: types.UnitGram}
	egg := types.CanonicalIdentity{Name: "egg", Unit: types.UnitCount}
	shadow := ShadowPantry{rice: 400, egg: 2}

	needs := []types.RequirementLine{
		{Item: "rice", Unit: types.UnitGram, Quantity: 200},
		{Item: "egg", Unit: types.UnitCount, Quantity: 2},
	}
	// min(400/200, 2/2) = 1.0: the egg line is the binding constraint.
	assert.InDelta(t, 1.0, shadow.Tightness(needs), 1e-9)

	assert.True(t, math.IsInf(ShadowPantry{}.Tightness(nil), 1),
		"a dish with no requirements is never tight")
}
