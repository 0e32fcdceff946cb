// Pantry ledger accessor: durable on-hand quantities keyed by canonical
// identity, with mirrored-unit bookkeeping.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/prakashnalubolu/meal-prep/internal/canon"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// Compile-time interface check.
var _ types.Ledger = (*pantryTable)(nil)

// pantryTable implements the Ledger interface. All mutations are applied
// as one logical unit: primary entry plus mirror deltas inside a single
// transaction, committed only after the JSONL source of truth has been
// replaced atomically.
type pantryTable struct {
	backend *Backend
	rules   []types.MirrorRule
}

// entryChange is one pending write: qty <= 0 deletes the entry, keeping
// the store sparse.
type entryChange struct {
	item string
	unit types.UnitFamily
	qty  int64
}

// Add increases the entry by qty. The unit label and scale fold together,
// so Add("rice", 2, "kg") lands as 2000 in the gram family.
func (pt *pantryTable) Add(item string, qty int64, unit string) (int64, error) {
	name := canon.Name(item)
	if name == "" {
		return 0, types.ErrInvalidItem
	}
	if qty <= 0 {
		return 0, types.ErrInvalidQuantity
	}
	base, fam := canon.Quantity(qty, unit)

	pt.backend.mu.Lock()
	defer pt.backend.mu.Unlock()
	if !pt.backend.attached {
		return 0, types.ErrStoreDetached
	}

	have, err := pt.quantity(name, fam)
	if err != nil {
		return 0, err
	}
	newQty := have + base

	changes := []entryChange{{name, fam, newQty}}
	changes = append(changes, pt.mirrorDelta(name, fam, base)...)
	if err := pt.apply(changes); err != nil {
		return 0, err
	}
	return newQty, nil
}

// Set overwrites the entry to an exact non-negative value. Mirrors are
// recomputed absolutely from the new value, not delta-applied.
func (pt *pantryTable) Set(item string, qty int64, unit string) error {
	name := canon.Name(item)
	if name == "" {
		return types.ErrInvalidItem
	}
	if qty < 0 {
		return types.ErrNegativeSet
	}
	base, fam := canon.Quantity(qty, unit)

	pt.backend.mu.Lock()
	defer pt.backend.mu.Unlock()
	if !pt.backend.attached {
		return types.ErrStoreDetached
	}

	changes := []entryChange{{name, fam, base}}
	changes = append(changes, pt.mirrorSet(name, fam, base)...)
	return pt.apply(changes)
}

// Remove subtracts qty floored at zero, deleting the entry when it
// reaches zero. A nil qty deletes the whole entry. Mirrors receive the
// delta actually applied, never more than was on hand.
func (pt *pantryTable) Remove(item string, qty *int64, unit string) (int64, error) {
	name := canon.Name(item)
	if name == "" {
		return 0, types.ErrInvalidItem
	}
	var base int64
	var fam types.UnitFamily
	if qty == nil {
		fam = canon.Family(unit)
	} else {
		if *qty <= 0 {
			return 0, types.ErrInvalidQuantity
		}
		base, fam = canon.Quantity(*qty, unit)
	}

	pt.backend.mu.Lock()
	defer pt.backend.mu.Unlock()
	if !pt.backend.attached {
		return 0, types.ErrStoreDetached
	}

	have, err := pt.quantity(name, fam)
	if err != nil {
		return 0, err
	}

	removed := have
	if qty != nil && base < have {
		removed = base
	}
	newQty := have - removed

	changes := []entryChange{{name, fam, newQty}}
	changes = append(changes, pt.mirrorDelta(name, fam, -removed)...)
	if err := pt.apply(changes); err != nil {
		return 0, err
	}
	return newQty, nil
}

// Get returns the on-hand quantity for the canonical identity, zero when
// absent.
func (pt *pantryTable) Get(item string, unit string) (int64, error) {
	pt.backend.mu.RLock()
	defer pt.backend.mu.RUnlock()
	if !pt.backend.attached {
		return 0, types.ErrStoreDetached
	}
	return pt.quantity(canon.Name(item), canon.Family(unit))
}

// List returns every entry sorted by item then unit.
func (pt *pantryTable) List() ([]types.PantryEntry, error) {
	pt.backend.mu.RLock()
	defer pt.backend.mu.RUnlock()
	if !pt.backend.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := pt.backend.db.Query(
		"SELECT item, unit, quantity FROM pantry ORDER BY item, unit")
	if err != nil {
		return nil, fmt.Errorf("listing pantry: %w", err)
	}
	defer rows.Close()

	var entries []types.PantryEntry
	for rows.Next() {
		var e types.PantryEntry
		if err := rows.Scan(&e.Item, &e.Unit, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning pantry row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Snapshot returns a point-in-time copy of all canonical quantities, used
// by the scheduler as its shadow pantry seed.
func (pt *pantryTable) Snapshot() (map[types.CanonicalIdentity]int64, error) {
	entries, err := pt.List()
	if err != nil {
		return nil, err
	}
	snap := make(map[types.CanonicalIdentity]int64, len(entries))
	for _, e := range entries {
		snap[e.Identity()] = e.Quantity
	}
	return snap, nil
}

// quantity reads one entry inside the caller's lock.
func (pt *pantryTable) quantity(item string, fam types.UnitFamily) (int64, error) {
	var qty int64
	err := pt.backend.db.QueryRow(
		"SELECT quantity FROM pantry WHERE item = ? AND unit = ?",
		item, string(fam),
	).Scan(&qty)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading pantry entry: %w", err)
	}
	return qty, nil
}

// mirrorDelta computes the mirror-entry changes for a delta mutation on
// (item, fam). A malformed rule is surfaced in the log and skipped; the
// primary mutation stays authoritative.
func (pt *pantryTable) mirrorDelta(item string, fam types.UnitFamily, delta int64) []entryChange {
	var changes []entryChange
	for _, r := range pt.rules {
		if r.Item != item || r.FromUnit != fam {
			continue
		}
		if err := r.Validate(); err != nil {
			pt.surfaceRule(r, err)
			continue
		}
		have, err := pt.quantity(item, r.ToUnit)
		if err != nil {
			pt.surfaceRule(r, err)
			continue
		}
		next := have + quantize(float64(delta)*r.Factor, r.Step)
		if next < 0 {
			next = 0
		}
		changes = append(changes, entryChange{item, r.ToUnit, next})
	}
	return changes
}

// mirrorSet computes mirror-entry changes for an absolute Set.
func (pt *pantryTable) mirrorSet(item string, fam types.UnitFamily, value int64) []entryChange {
	var changes []entryChange
	for _, r := range pt.rules {
		if r.Item != item || r.FromUnit != fam {
			continue
		}
		if err := r.Validate(); err != nil {
			pt.surfaceRule(r, err)
			continue
		}
		changes = append(changes, entryChange{item, r.ToUnit, quantize(float64(value)*r.Factor, r.Step)})
	}
	return changes
}

// surfaceRule reports a mirror rule that could not be applied.
func (pt *pantryTable) surfaceRule(r types.MirrorRule, err error) {
	pt.backend.logger.Warn("unit mirror rule skipped",
		zap.String("item", r.Item),
		zap.String("from", string(r.FromUnit)),
		zap.String("to", string(r.ToUnit)),
		zap.Error(fmt.Errorf("%w: %v", types.ErrMirrorRule, err)))
}

// quantize converts a raw mirrored amount to a ledger quantity. Exact
// whole-number conversions pass through unchanged; the rounding step only
// quantizes fractional amounts.
func quantize(raw float64, step int64) int64 {
	if raw == math.Trunc(raw) {
		return int64(raw)
	}
	if step <= 0 {
		return int64(math.Round(raw))
	}
	return int64(math.Round(raw/float64(step))) * step
}

// apply writes the pending changes and replaces pantry.jsonl inside one
// logical unit. The file is persisted from the open transaction and the
// transaction commits only after the atomic rename succeeds, so a failed
// durable write aborts without partial state.
func (pt *pantryTable) apply(changes []entryChange) error {
	tx, err := pt.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ch := range changes {
		if ch.qty <= 0 {
			_, err = tx.Exec(
				"DELETE FROM pantry WHERE item = ? AND unit = ?",
				ch.item, string(ch.unit))
		} else {
			_, err = tx.Exec(
				`INSERT INTO pantry (item, unit, quantity) VALUES (?, ?, ?)
				 ON CONFLICT(item, unit) DO UPDATE SET quantity = excluded.quantity`,
				ch.item, string(ch.unit), ch.qty)
		}
		if err != nil {
			return fmt.Errorf("writing pantry entry %s (%s): %w", ch.item, ch.unit, err)
		}
	}

	records, err := pantryRecords(tx)
	if err != nil {
		return err
	}
	path := filepath.Join(pt.backend.config.DataDir, pantryFile)
	if err := writeJSONL(path, records); err != nil {
		return err
	}
	return tx.Commit()
}

// pantryRecords marshals the full pantry state visible to tx.
func pantryRecords(tx *sql.Tx) ([]json.RawMessage, error) {
	rows, err := tx.Query("SELECT item, unit, quantity FROM pantry ORDER BY item, unit")
	if err != nil {
		return nil, fmt.Errorf("querying pantry: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var e types.PantryEntry
		if err := rows.Scan(&e.Item, &e.Unit, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scanning pantry row: %w", err)
		}
		rec, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("marshaling pantry entry: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// loadPantryJSONL hydrates the pantry table from pantry.jsonl.
func (b *Backend) loadPantryJSONL() error {
	records, err := readJSONL(filepath.Join(b.config.DataDir, pantryFile))
	if err != nil {
		return err
	}
	for _, rec := range records {
		var e types.PantryEntry
		if err := json.Unmarshal(rec, &e); err != nil {
			continue
		}
		if e.Item == "" || e.Quantity <= 0 {
			continue
		}
		if _, err := b.db.Exec(
			`INSERT INTO pantry (item, unit, quantity) VALUES (?, ?, ?)
			 ON CONFLICT(item, unit) DO UPDATE SET quantity = excluded.quantity`,
			e.Item, string(e.Unit), e.Quantity); err != nil {
			return fmt.Errorf("loading pantry entry %s: %w", e.Item, err)
		}
	}
	return nil
}
