package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

func TestAutoPlanStrictStopsWhenBudgetExhausted(t *testing.T) {
	// Two dishes both cost 200 g rice; the pantry holds exactly one
	// serving. The first slot consumes the budget, then planning stops.
	session, store, _ := newTestSession(t,
		[]types.Recipe{riceDish("Dish A", 200), riceDish("Dish B", 200)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 200}})

	res, err := session.AutoPlan(ScheduleRequest{Days: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Filled)
	assert.Equal(t, 3, res.Attempted)
	assert.True(t, res.Stopped)

	plan := session.Plan()
	assert.NotEmpty(t, plan.Slot(1, "breakfast"))
	assert.Empty(t, plan.Slot(1, "lunch"))
	assert.Empty(t, plan.Slot(1, "dinner"))

	// Planning is a simulation: the real pantry is untouched.
	ledger, err := store.Ledger()
	require.NoError(t, err)
	have, err := ledger.Get("rice", "g")
	require.NoError(t, err)
	assert.Equal(t, int64(200), have)
}

func TestAutoPlanSchedulesScarceDishFirst(t *testing.T) {
	// Scarce has tightness 1.0 (200/200 g rice), Plenty has 5.0 (10/2
	// eggs). The tightest dish takes the first slot before shared budget
	// drains.
	scarce := riceDish("Scarce", 200)
	plenty := types.Recipe{
		Name: "Plenty", Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 1, CookTimeMin: 1,
		Ingredients: []types.Ingredient{{Item: "eggs", Quantity: 2, Unit: "count"}},
	}
	session, _, _ := newTestSession(t,
		[]types.Recipe{plenty, scarce},
		[]types.PantryEntry{
			{Item: "rice", Unit: "g", Quantity: 200},
			{Item: "eggs", Unit: "count", Quantity: 10},
		})

	res, err := session.AutoPlan(ScheduleRequest{Days: 1, Meals: []string{"lunch", "dinner"}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Filled)
	plan := session.Plan()
	assert.Equal(t, "Scarce", plan.Slot(1, "lunch"))
	assert.Equal(t, "Plenty", plan.Slot(1, "dinner"))
}

func TestAutoPlanFallbackReusesCoverableDish(t *testing.T) {
	// One dish, plenty of budget, repeats allowed: the once-coverable set
	// holds it once, then the fallback pass keeps assigning it.
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 100)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 1000}})

	res, err := session.AutoPlan(ScheduleRequest{Days: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Filled)
	for _, meal := range []string{"breakfast", "lunch", "dinner"} {
		assert.Equal(t, "Jeera Rice", session.Plan().Slot(1, meal))
	}
}

func TestAutoPlanFreeformIgnoresPantry(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Dish A", 200), riceDish("Dish B", 200)},
		nil)

	require.NoError(t, session.SetConstraints(types.Constraints{
		Mode:         types.ModeFreeform,
		AllowRepeats: true,
	}))

	res, err := session.AutoPlan(ScheduleRequest{Days: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Filled)
	assert.False(t, res.Stopped)
}

func TestAutoPlanFreeformNoImmediateRepeat(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Dish A", 100), riceDish("Dish B", 100)},
		nil)

	require.NoError(t, session.SetConstraints(types.Constraints{
		Mode:         types.ModeFreeform,
		AllowRepeats: false,
	}))

	_, err := session.AutoPlan(ScheduleRequest{Days: 2, Meals: []string{"lunch", "dinner"}})
	require.NoError(t, err)

	// Consecutive slots alternate between the two dishes.
	plan := session.Plan()
	seq := []string{
		plan.Slot(1, "lunch"), plan.Slot(1, "dinner"),
		plan.Slot(2, "lunch"), plan.Slot(2, "dinner"),
	}
	for i := 1; i < len(seq); i++ {
		assert.NotEqual(t, seq[i-1], seq[i], "slot %d repeats %q", i, seq[i])
	}
}

func TestAutoPlanContinueExtendsPlan(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 100)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 10000}})

	_, err := session.AutoPlan(ScheduleRequest{Days: 1})
	require.NoError(t, err)
	first := session.Plan().Slot(1, "lunch")
	require.NotEmpty(t, first)

	res, err := session.AutoPlan(ScheduleRequest{Days: 1, Continue: true})
	require.NoError(t, err)

	plan := session.Plan()
	assert.Equal(t, 2, plan.MaxDay())
	assert.Equal(t, first, plan.Slot(1, "lunch"), "continue must not rewrite existing slots")
	assert.NotEmpty(t, plan.Slot(2, "dinner"))
	assert.Equal(t, 3, res.Attempted, "only the appended day's open slots count")
}

func TestAutoPlanContinueRetriesOpenSlotsFirst(t *testing.T) {
	// One serving's worth of rice: the first run fills breakfast and
	// stops. A continue revisits the still-infeasible day-1 slots before
	// the appended day, so it stops again with nothing filled.
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 200)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 200}})

	res, err := session.AutoPlan(ScheduleRequest{Days: 1})
	require.NoError(t, err)
	require.Equal(t, 1, res.Filled)

	res, err = session.AutoPlan(ScheduleRequest{Days: 1, Continue: true})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Filled)
	assert.Equal(t, 5, res.Attempted, "two day-1 leftovers plus three appended slots")
	assert.True(t, res.Stopped)

	plan := session.Plan()
	assert.Equal(t, "Jeera Rice", plan.Slot(1, "breakfast"))
	assert.Equal(t, 1, plan.FilledCount(), "appended day stays open")
}

func TestAutoPlanRestartDiscardsPlan(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 100)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 10000}})

	_, err := session.AutoPlan(ScheduleRequest{Days: 3})
	require.NoError(t, err)
	require.Equal(t, 3, session.Plan().MaxDay())

	// Without --continue the horizon resets.
	_, err = session.AutoPlan(ScheduleRequest{Days: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, session.Plan().MaxDay())
}

func TestAutoPlanDeterministic(t *testing.T) {
	recipes := []types.Recipe{
		riceDish("Dish C", 100),
		riceDish("Dish A", 100),
		riceDish("Dish B", 100),
	}
	pantry := []types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 300}}

	var firstDishes []string
	for i := 0; i < 3; i++ {
		session, _, _ := newTestSession(t, recipes, pantry)
		_, err := session.AutoPlan(ScheduleRequest{Days: 1})
		require.NoError(t, err)
		plan := session.Plan()
		firstDishes = append(firstDishes, plan.Slot(1, "breakfast")+"|"+plan.Slot(1, "lunch")+"|"+plan.Slot(1, "dinner"))
	}
	assert.Equal(t, firstDishes[0], firstDishes[1])
	assert.Equal(t, firstDishes[1], firstDishes[2])
}

func TestAutoPlanRejectsBadRequest(t *testing.T) {
	session, _, _ := newTestSession(t, nil, nil)

	_, err := session.AutoPlan(ScheduleRequest{Days: 0})
	assert.ErrorIs(t, err, types.ErrInvalidDays)

	_, err = session.AutoPlan(ScheduleRequest{Days: -2})
	assert.ErrorIs(t, err, types.ErrInvalidDays)

	_, err = session.AutoPlan(ScheduleRequest{Days: 1, Meals: []string{"lunch", " "}})
	assert.ErrorIs(t, err, types.ErrInvalidMeals)

	_, err = session.AutoPlan(ScheduleRequest{Days: 1, Meals: []string{"lunch", "Lunch"}})
	assert.ErrorIs(t, err, types.ErrInvalidMeals)
}
