package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

func TestSuggestRanksByCoverage(t *testing.T) {
	full := types.Recipe{
		Name: "Fully Stocked", Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 5, CookTimeMin: 5,
		Ingredients: []types.Ingredient{
			{Item: "rice", Quantity: 100, Unit: "g"},
		},
	}
	half := types.Recipe{
		Name: "Half Stocked", Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 5, CookTimeMin: 5,
		Ingredients: []types.Ingredient{
			{Item: "rice", Quantity: 100, Unit: "g"},
			{Item: "paneer", Quantity: 200, Unit: "g"},
		},
	}
	none := types.Recipe{
		Name: "Unstocked", Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 5, CookTimeMin: 5,
		Ingredients: []types.Ingredient{
			{Item: "chicken", Quantity: 300, Unit: "g"},
		},
	}

	session, _, _ := newTestSession(t,
		[]types.Recipe{half, none, full},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 500}})

	suggestions, err := session.Suggest(0)
	require.NoError(t, err)
	require.Len(t, suggestions, 2, "zero-coverage dishes are dropped")

	assert.Equal(t, "Fully Stocked", suggestions[0].Recipe.Name)
	assert.InDelta(t, 1.0, suggestions[0].Coverage, 1e-9)
	assert.Equal(t, "Half Stocked", suggestions[1].Recipe.Name)
	assert.InDelta(t, 0.5, suggestions[1].Coverage, 1e-9)
}

func TestSuggestHonorsLimitAndConstraints(t *testing.T) {
	dishes := []types.Recipe{
		riceDish("Dish A", 100),
		riceDish("Dish B", 100),
		riceDish("Dish C", 100),
	}
	session, _, _ := newTestSession(t, dishes,
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 500}})

	suggestions, err := session.Suggest(2)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)

	// A cuisine constraint empties the eligible set.
	require.NoError(t, session.SetConstraints(types.Constraints{
		Mode:         types.ModePantryFirstStrict,
		AllowRepeats: true,
		Cuisine:      "thai",
	}))
	suggestions, err = session.Suggest(2)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
