// Package types defines the Store, Ledger, and Catalog interfaces, the
// planning entity types (identities, recipes, constraints, plans, deficits,
// audit entries), and the standard errors for the meal-prep planning core.
package types
