package planner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// stateFile holds the session state carried across CLI invocations.
const stateFile = "plan_state.json"

// sessionState is the durable slice of a session: constraints and plan.
// The shadow budget is in-memory only; a fresh process re-snapshots.
type sessionState struct {
	Constraints types.Constraints `json:"constraints"`
	Plan        *types.Plan       `json:"plan"`
}

func (s *Session) statePath() string {
	return filepath.Join(s.dataDir, stateFile)
}

// loadState restores persisted constraints and plan. A missing file keeps
// the defaults; a malformed one is an error, not silently discarded.
func (s *Session) loadState() error {
	data, err := os.ReadFile(s.statePath())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading session state: %v", types.ErrPersistence, err)
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("%w: parsing session state: %v", types.ErrInvalidData, err)
	}
	if state.Constraints.Mode != "" {
		s.constraints = state.Constraints
	}
	if state.Plan != nil {
		if len(state.Plan.Meals) == 0 {
			state.Plan.Meals = defaultMeals()
		}
		if state.Plan.Days == nil {
			state.Plan.Days = make(map[int]map[string]string)
		}
		s.plan = state.Plan
	}
	return nil
}

// saveState persists the session's durable slice atomically.
func (s *Session) saveState() error {
	return writeJSONAtomic(s.statePath(), sessionState{
		Constraints: s.constraints,
		Plan:        s.plan,
	})
}

// writeJSONAtomic marshals v and writes it with the temp-file, fsync,
// rename discipline, creating parent directories as needed. Readers never
// observe a partial file.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", types.ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %v", types.ErrPersistence, filepath.Base(path), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: syncing %s: %v", types.ErrPersistence, filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing temp file: %v", types.ErrPersistence, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", types.ErrPersistence, filepath.Base(path), err)
	}
	return nil
}
