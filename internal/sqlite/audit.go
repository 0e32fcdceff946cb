// Append-only audit log. Diagnostics only: write-once records that core
// logic never reads back.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// Compile-time interface check.
var _ types.AuditLog = (*auditLog)(nil)

type auditLog struct {
	mu   sync.Mutex
	path string
}

// Append writes one entry as a JSON line. Entry ID and timestamp are
// filled when absent. O_APPEND keeps the log strictly append-only; a
// single synced line is durable enough for diagnostics.
func (a *auditLog) Append(entry types.AuditEntry) error {
	if entry.EntryID == "" {
		entry.EntryID = newEntryID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling audit entry: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: opening audit log: %v", types.ErrPersistence, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("%w: appending audit entry: %v", types.ErrPersistence, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: syncing audit log: %v", types.ErrPersistence, err)
	}
	return nil
}

// newEntryID generates a UUID v7 entry ID, falling back to v4.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
