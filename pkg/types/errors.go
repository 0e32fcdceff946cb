package types

import "errors"

// Validation errors. Surfaced immediately on malformed input; never
// retried automatically.
var (
	ErrInvalidItem     = errors.New("item name must not be empty")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNegativeSet     = errors.New("quantity must not be negative")
	ErrInvalidMode     = errors.New("unknown planning mode")
	ErrInvalidDays     = errors.New("days must be positive")
	ErrInvalidMeals    = errors.New("at least one meal slot is required")
	ErrInvalidSlot     = errors.New("invalid plan slot reference")
	ErrInvalidData     = errors.New("invalid entity data")
)

// Lookup errors. Non-fatal; callers may retry with corrected input.
var (
	ErrDishNotFound = errors.New("dish not found in catalog")
	ErrSlotEmpty    = errors.New("plan slot is empty")
)

// ErrMirrorRule marks a unit-mirror rule that could not be applied. The
// primary pantry mutation is still authoritative when this is reported.
var ErrMirrorRule = errors.New("malformed unit mirror rule")

// ErrPersistence wraps any failed durable write. Mutations abort without
// committing partial state when a persistence error occurs.
var ErrPersistence = errors.New("persistence failure")
