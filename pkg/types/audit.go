package types

import "time"

// Audit entry kinds.
const (
	AuditAssignment = "assignment"
	AuditCook       = "cook"
)

// Scheduler pass tags recorded on assignment entries.
const (
	PassOnceCoverable = 1
	PassFallback      = 2
	PassFreeform      = 0
)

// AuditEntry is one append-only diagnostic record of a scheduling
// assignment or a cook transaction. Write-once; never read by core logic.
type AuditEntry struct {
	EntryID   string            `json:"entry_id"`
	Timestamp time.Time         `json:"timestamp"`
	Kind      string            `json:"kind"`
	Dish      string            `json:"dish"`
	Day       int               `json:"day,omitempty"`
	Meal      string            `json:"meal,omitempty"`
	Pass      int               `json:"pass,omitempty"`
	Used      []RequirementLine `json:"used,omitempty"`
	Missing   []RequirementLine `json:"missing,omitempty"`
}
