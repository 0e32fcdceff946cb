package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashnalubolu/meal-prep/internal/sqlite"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// newTestStore attaches a backend over a temp dir and loads the given
// recipes. Returns the store and its data dir; cleanup is registered.
func newTestStore(t *testing.T, recipes []types.Recipe) (*sqlite.Backend, string) {
	t.Helper()
	dataDir := t.TempDir()

	b := sqlite.NewBackend(nil)
	require.NoError(t, b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}))
	t.Cleanup(func() { b.Detach() })

	catalog, err := b.Catalog()
	require.NoError(t, err)
	for i := range recipes {
		require.NoError(t, catalog.Put(&recipes[i]))
	}
	return b, dataDir
}

// newTestSession builds a session over a fresh store and stocks the
// pantry. Pantry keys are "item unit" free text fed through Add.
func newTestSession(t *testing.T, recipes []types.Recipe, pantry []types.PantryEntry) (*Session, *sqlite.Backend, string) {
	t.Helper()
	store, dataDir := newTestStore(t, recipes)

	ledger, err := store.Ledger()
	require.NoError(t, err)
	for _, e := range pantry {
		_, err := ledger.Add(e.Item, e.Quantity, string(e.Unit))
		require.NoError(t, err)
	}

	session, err := NewSession(store, dataDir, nil)
	require.NoError(t, err)
	return session, store, dataDir
}

func riceDish(name string, grams int64) types.Recipe {
	return types.Recipe{
		Name: name, Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 5, CookTimeMin: 10,
		Ingredients: []types.Ingredient{{Item: "rice", Quantity: grams, Unit: "g"}},
	}
}

func TestSetConstraintsNormalizes(t *testing.T) {
	session, _, _ := newTestSession(t, nil, nil)

	err := session.SetConstraints(types.Constraints{
		Mode:         "pantry-first-strict",
		AllowRepeats: true,
		Diet:         "Eggetarian",
		Cuisine:      " Indian ",
	})
	require.NoError(t, err)

	c := session.Constraints()
	assert.Equal(t, types.ModePantryFirstStrict, c.Mode)
	assert.Equal(t, types.DietEggtarian, c.Diet)
	assert.Equal(t, "indian", c.Cuisine)

	err = session.SetConstraints(types.Constraints{Mode: "chaotic"})
	assert.ErrorIs(t, err, types.ErrInvalidMode)
}

func TestSessionStatePersists(t *testing.T) {
	session, store, dataDir := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 100)}, nil)

	require.NoError(t, session.SetConstraints(types.Constraints{
		Mode:    types.ModeFreeform,
		Cuisine: "indian",
	}))
	require.NoError(t, session.UpdatePlan(2, "dinner", "Jeera Rice"))

	// A second session over the same data dir sees the same state.
	session2, err := NewSession(store, dataDir, nil)
	require.NoError(t, err)

	assert.Equal(t, types.ModeFreeform, session2.Constraints().Mode)
	assert.Equal(t, "indian", session2.Constraints().Cuisine)
	assert.Equal(t, "Jeera Rice", session2.Plan().Slot(2, "dinner"))
}

func TestUpdatePlanValidatesDish(t *testing.T) {
	session, _, _ := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 100)}, nil)

	err := session.UpdatePlan(1, "lunch", "Biryani")
	assert.ErrorIs(t, err, types.ErrDishNotFound)

	// Dish name folds to the catalog's casing.
	require.NoError(t, session.UpdatePlan(1, "lunch", "jeera rice"))
	assert.Equal(t, "Jeera Rice", session.Plan().Slot(1, "lunch"))

	// Clearing needs no catalog lookup.
	require.NoError(t, session.UpdatePlan(1, "lunch", ""))
	assert.Equal(t, "", session.Plan().Slot(1, "lunch"))

	err = session.UpdatePlan(0, "lunch", "")
	assert.ErrorIs(t, err, types.ErrInvalidSlot)
}

func TestSavePlanWritesArtifact(t *testing.T) {
	session, _, dataDir := newTestSession(t,
		[]types.Recipe{riceDish("Jeera Rice", 300)},
		[]types.PantryEntry{{Item: "rice", Unit: "g", Quantity: 150}})

	require.NoError(t, session.UpdatePlan(1, "lunch", "Jeera Rice"))

	path, err := session.SavePlan("week34")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "plans", "week34.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jeera Rice")
	assert.Contains(t, string(data), "shopping_list")
	assert.Contains(t, string(data), `"buy": 150`)
}
