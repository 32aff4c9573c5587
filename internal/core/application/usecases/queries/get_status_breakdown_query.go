package queries

import (
	"errors"

	"foodshare/internal/pkg/guard"
)

// ErrGetStatusBreakdownQueryIsNotConstructed is returned when a query was
// not created through the NewGetStatusBreakdownQuery constructor.
var ErrGetStatusBreakdownQueryIsNotConstructed = errors.New(
	"GetStatusBreakdownQuery must be created via NewGetStatusBreakdownQuery constructor")

// GetStatusBreakdownQuery retrieves the global donation counts per lifecycle
// state. It backs the periodic stats snapshot and has no per-actor scope.
type GetStatusBreakdownQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusBreakdownQuery creates a parameterless breakdown query.
func NewGetStatusBreakdownQuery() GetStatusBreakdownQuery {
	return GetStatusBreakdownQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusBreakdownQueryIsNotConstructed if validation fails.
func (q GetStatusBreakdownQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusBreakdownQueryIsNotConstructed)
}

// StatusBreakdown holds the global donation counts per lifecycle state.
type StatusBreakdown struct {
	Available int
	Reserved  int
	Completed int
}

// Total returns the number of donations across all states.
func (b StatusBreakdown) Total() int {
	return b.Available + b.Reserved + b.Completed
}
