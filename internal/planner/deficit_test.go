package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

func TestShoppingListAggregatesAcrossSlots(t *testing.T) {
	// Two planned servings need 300 g rice total against 150 g on hand.
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 150)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 150}})

	require.NoError(t, session.UpdatePlan(1, "lunch", "Jeera Rice"))
	require.NoError(t, session.UpdatePlan(1, "dinner", "Jeera Rice"))

	deficits, err := session.ShoppingList()
	require.NoError(t, err)
	require.Len(t, deficits, 1)

	d := deficits[0]
	assert.Equal(t, "rice", d.Item)
	assert.Equal(t, types.UnitGram, d.Unit)
	assert.Equal(t, int64(300), d.Need)
	assert.Equal(t, int64(150), d.Have)
	assert.Equal(t, int64(150), d.Buy)
}

func TestShoppingListEmptyWhenCovered(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 100)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 500}})

	require.NoError(t, session.UpdatePlan(1, "lunch", "Jeera Rice"))

	deficits, err := session.ShoppingList()
	require.NoError(t, err)
	assert.Empty(t, deficits)
}

func TestShoppingListMergesIngredientSpellings(t *testing.T) {
	// Recipe says "Tomatoes", the pantry was stocked as "tomato"; the
	// canonical identity matches them up.
	dish := types.Recipe{
		Name: "Salad", Cuisine: "italian", Diet: "veg",
		Ingredients: []types.Ingredient{{Item: "Tomatoes", Quantity: 4, Unit: "count"}},
	}
	session, _, _ := newTestSession(t,
		[]types.Recipe{dish},
		[]types.PantryEntry{{Item: "tomato", Unit: "count", Quantity: 1}})

	require.NoError(t, session.UpdatePlan(1, "lunch", "Salad"))

	deficits, err := session.ShoppingList()
	require.NoError(t, err)
	require.Len(t, deficits, 1)
	assert.Equal(t, "tomato", deficits[0].Item)
	assert.Equal(t, int64(3), deficits[0].Buy)
}

func TestShoppingListSkipsVanishedDish(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 100)}, nil)

	require.NoError(t, session.UpdatePlan(1, "lunch", "Jeera Rice"))

	// A slot can end up naming a dish the catalog no longer has. The
	// shopping list reports what it can and skips the rest.
	session.plan.Days[1]["lunch"] = "Gone Dish"

	deficits, err := session.ShoppingList()
	require.NoError(t, err)
	assert.Empty(t, deficits)
}

func TestCheckDish(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 300)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 120}})

	deficits, err := session.CheckDish("jeera rice")
	require.NoError(t, err)
	require.Len(t, deficits, 1)
	assert.Equal(t, int64(180), deficits[0].Buy)

	_, err = session.CheckDish("Biryani")
	assert.ErrorIs(t, err, types.ErrDishNotFound)
}
