// Package planner implements the pantry-aware planning core: recipe
// requirement resolution, the constraint-driven shadow scheduler, deficit
// computation, the cook transaction, and the planning session that owns
// constraints, plan, and audit trail.
package planner
