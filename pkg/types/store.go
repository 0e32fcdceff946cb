package types

import "errors"

// Store is the durable backend for the planning core. Callers attach to a
// backend, use its typed accessors, and detach when done. A store instance
// is single-writer: callers must serialize access to a given store.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// accessor operations return ErrStoreDetached.
	Detach() error

	// Ledger returns the resource ledger accessor.
	Ledger() (Ledger, error)

	// Catalog returns the recipe catalog accessor.
	Catalog() (Catalog, error)

	// Audit returns the append-only audit log.
	Audit() (AuditLog, error)
}

// Ledger is the mutable pantry store keyed by canonical identity. Raw item
// names and unit labels are canonicalized at this boundary; quantities are
// rescaled together with their unit label (a "kilo" input arrives in the
// gram family multiplied by 1000 before it gets here or via Add's unit).
type Ledger interface {
	// Add increases the entry by qty (must be > 0). Returns the new
	// on-hand quantity for the primary identity.
	Add(item string, qty int64, unit string) (int64, error)

	// Set overwrites the entry to an exact non-negative value. Setting
	// zero deletes the entry.
	Set(item string, qty int64, unit string) error

	// Remove subtracts qty, floored at zero, deleting the entry when it
	// reaches zero. A nil qty deletes the whole entry. Returns the
	// remaining on-hand quantity.
	Remove(item string, qty *int64, unit string) (int64, error)

	// Get returns the on-hand quantity for the canonical identity, zero
	// when absent.
	Get(item string, unit string) (int64, error)

	// List returns every entry sorted by item then unit.
	List() ([]PantryEntry, error)

	// Snapshot returns a point-in-time copy of all canonical quantities.
	Snapshot() (map[CanonicalIdentity]int64, error)
}

// Catalog is the read-only dish resolver consumed by the planning core.
// Put exists only for seeding and import; the core never calls it.
type Catalog interface {
	// ByName returns the recipe with the given name (case-insensitive).
	// Returns ErrDishNotFound when absent.
	ByName(name string) (*Recipe, error)

	// Eligible returns the recipes passing the cuisine, diet, and max-time
	// filters of the constraints, in stable (name, cuisine) order.
	Eligible(c Constraints) ([]*Recipe, error)

	// List returns every recipe in stable (name, cuisine) order.
	List() ([]*Recipe, error)

	// Put stores a recipe, keyed by name.
	Put(r *Recipe) error
}

// AuditLog is the append-only diagnostic sink.
type AuditLog interface {
	Append(entry AuditEntry) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
