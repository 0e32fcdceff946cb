package planner

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// Session is the single explicit owner of planning state: the active
// constraints, the working plan, and the shadow budget carried between
// continue calls. All mutations flow through its methods and every plan
// or constraint change is persisted before the call returns, so separate
// CLI invocations see one coherent session.
type Session struct {
	store   types.Store
	ledger  types.Ledger
	audit   types.AuditLog
	logger  *zap.Logger
	dataDir string

	constraints types.Constraints
	plan        *types.Plan
	shadow      ShadowPantry
}

// defaultMeals returns the slot names used when a plan request names none.
func defaultMeals() []string {
	return []string{"breakfast", "lunch", "dinner"}
}

// NewSession builds a session on an attached store, restoring persisted
// constraints and plan from the data directory when present.
func NewSession(store types.Store, dataDir string, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ledger, err := store.Ledger()
	if err != nil {
		return nil, err
	}
	audit, err := store.Audit()
	if err != nil {
		return nil, err
	}

	s := &Session{
		store:       store,
		ledger:      ledger,
		audit:       audit,
		logger:      logger,
		dataDir:     dataDir,
		constraints: types.DefaultConstraints(),
		plan:        types.NewPlan(defaultMeals()),
	}
	if err := s.loadState(); err != nil {
		return nil, err
	}
	return s, nil
}

// Constraints returns the active planning constraints.
func (s *Session) Constraints() types.Constraints {
	return s.constraints
}

// SetConstraints replaces the planning constraints wholesale after
// normalizing the mode and diet labels. The carried shadow budget is
// discarded since eligibility may have changed.
func (s *Session) SetConstraints(c types.Constraints) error {
	c.Mode = types.NormalizeMode(c.Mode)
	c.Diet = types.NormalizeDiet(c.Diet)
	c.Cuisine = strings.ToLower(strings.TrimSpace(c.Cuisine))
	if err := c.Validate(); err != nil {
		return err
	}
	s.constraints = c
	s.shadow = nil
	return s.saveState()
}

// Plan returns a copy of the working plan. Callers mutate slots through
// UpdatePlan, never through the returned value.
func (s *Session) Plan() *types.Plan {
	return s.plan.Clone()
}

// UpdatePlan writes one slot manually. An empty dish clears the slot; a
// non-empty dish must exist in the catalog. Manual edits never consult or
// consume the shadow budget.
func (s *Session) UpdatePlan(day int, meal, dish string) error {
	meal = strings.ToLower(strings.TrimSpace(meal))
	dish = strings.TrimSpace(dish)
	if dish != "" {
		catalog, err := s.store.Catalog()
		if err != nil {
			return err
		}
		r, err := catalog.ByName(dish)
		if err != nil {
			return err
		}
		dish = r.Name
	}
	if err := s.plan.SetSlot(day, meal, dish); err != nil {
		return err
	}
	return s.saveState()
}

// ClearPlan drops the working plan and shadow budget.
func (s *Session) ClearPlan() error {
	s.plan = types.NewPlan(defaultMeals())
	s.shadow = nil
	return s.saveState()
}

// ShoppingList computes the deficits for the working plan against the
// real pantry.
func (s *Session) ShoppingList() ([]types.Deficit, error) {
	catalog, err := s.store.Catalog()
	if err != nil {
		return nil, err
	}
	return Deficits(s.plan, s.ledger, catalog, s.logger)
}

// CheckDish computes the deficits for cooking one dish right now.
func (s *Session) CheckDish(dish string) ([]types.Deficit, error) {
	catalog, err := s.store.Catalog()
	if err != nil {
		return nil, err
	}
	return SingleDishDeficits(dish, s.ledger, catalog)
}

// planArtifact is the exported snapshot written by SavePlan.
type planArtifact struct {
	SavedAt      time.Time         `json:"saved_at"`
	Constraints  types.Constraints `json:"constraints"`
	Plan         *types.Plan       `json:"plan"`
	ShoppingList []types.Deficit   `json:"shopping_list"`
}

// SavePlan writes the current plan, constraints, and shopping list as a
// JSON artifact under the data directory's plans/ folder and returns the
// path. An empty name gets a timestamped default.
func (s *Session) SavePlan(name string) (string, error) {
	list, err := s.ShoppingList()
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("meal_plan_%s", time.Now().UTC().Format("20060102_150405"))
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	path := filepath.Join(s.dataDir, "plans", filepath.Base(name))

	artifact := planArtifact{
		SavedAt:      time.Now().UTC(),
		Constraints:  s.constraints,
		Plan:         s.plan.Clone(),
		ShoppingList: list,
	}
	if err := writeJSONAtomic(path, artifact); err != nil {
		return "", err
	}
	s.logger.Info("plan saved", zap.String("path", path))
	return path, nil
}
