// Package sqlite implements the storage backend for the meal-prep core.
// SQLite is the query engine; JSONL files in the data directory are the
// source of truth, loaded on Attach and rewritten atomically on every
// committed mutation.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Backend implements the Store interface using SQLite as the query engine
// and JSON Lines files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *zap.Logger

	pantry  *pantryTable
	recipes *recipeTable
	audit   *auditLog
}

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// NewBackend creates a detached backend. A nil logger falls back to a
// no-op logger.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{logger: logger}
}

// Attach initializes the backend with the given configuration: creates
// DataDir, rebuilds the SQLite schema, and loads the JSONL files into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating data dir: %v", types.ErrPersistence, err)
	}
	config.DataDir = dataDir

	// The database file is disposable; JSONL is authoritative. Rebuild
	// from scratch on every attach so schema drift cannot accumulate.
	dbPath := filepath.Join(dataDir, "mealprep.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("executing schema: %w", err)
	}

	b.db = db
	b.config = config

	if err := b.initJSONLFiles(); err != nil {
		db.Close()
		return err
	}
	if err := b.loadAllJSONL(); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.pantry = &pantryTable{backend: b, rules: config.MirrorRules}
	b.recipes = &recipeTable{backend: b}
	b.audit = &auditLog{path: filepath.Join(dataDir, "audit.jsonl")}
	b.attached = true

	return nil
}

// Detach releases backend resources. Idempotent; after Detach, accessor
// operations return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.pantry = nil
	b.recipes = nil
	b.audit = nil
	return nil
}

// Ledger returns the pantry ledger accessor.
func (b *Backend) Ledger() (types.Ledger, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.pantry, nil
}

// Catalog returns the recipe catalog accessor.
func (b *Backend) Catalog() (types.Catalog, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.recipes, nil
}

// Audit returns the append-only audit log.
func (b *Backend) Audit() (types.AuditLog, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.audit, nil
}

// DataDir returns the resolved data directory of an attached backend.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.DataDir
}

// initJSONLFiles creates empty source-of-truth files on first attach so a
// fresh data directory round-trips cleanly.
func (b *Backend) initJSONLFiles() error {
	for _, name := range []string{pantryFile, recipesFile} {
		path := filepath.Join(b.config.DataDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, nil, 0o644); err != nil {
				return fmt.Errorf("%w: init %s: %v", types.ErrPersistence, name, err)
			}
		}
	}
	return nil
}

// loadAllJSONL hydrates the SQLite tables from the JSONL files.
func (b *Backend) loadAllJSONL() error {
	if err := b.loadPantryJSONL(); err != nil {
		return err
	}
	return b.loadRecipesJSONL()
}
