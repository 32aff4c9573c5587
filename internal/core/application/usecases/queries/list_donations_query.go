// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// All donation read models are normalized at read time: rows missing an id,
// title or category are dropped, categories are lower-cased, non-positive
// quantities default to 1 and unusable coordinates are replaced by a
// jittered fallback point. Stored rows are never modified by a query.
package queries

import (
	"errors"
	"strings"

	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

// ListLimit caps the number of donations a listing returns.
const ListLimit = 50

var ErrListDonationsQueryIsNotConstructed = errors.New(
	"ListDonationsQuery must be created via NewListDonationsQuery constructor",
)

// ListDonationsQuery retrieves the public donation feed, newest first,
// capped at ListLimit entries. Status, category and reserver filters are
// optional and combine.
//
// Example:
//
//	query, err := NewListDonationsQuery("available", "bakery", "")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListDonationsQueryHandler(db)
//	donations, err := handler.Handle(ctx, query)
type ListDonationsQuery struct { //nolint:recvcheck //using for validation
	status     *donation.Status
	category   string
	reservedBy *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDonationsQuery creates a listing query from optional string
// filters. Empty strings mean "no filter"; a non-empty status must parse and
// a non-empty reserver must be a UUID.
func NewListDonationsQuery(status, category, reservedBy string) (ListDonationsQuery, error) {
	query := ListDonationsQuery{
		category: strings.ToLower(strings.TrimSpace(category)),
		guard:    guard.NewConstructorGuard(),
	}

	if s := strings.TrimSpace(status); s != "" {
		parsed, err := donation.StatusFromString(s)
		if err != nil {
			return ListDonationsQuery{}, err
		}
		query.status = &parsed
	}

	if r := strings.TrimSpace(reservedBy); r != "" {
		parsed, err := kernel.UUIDFromString(r)
		if err != nil {
			return ListDonationsQuery{}, err
		}
		query.reservedBy = &parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDonationsQueryIsNotConstructed if validation fails.
func (q ListDonationsQuery) Validate() error {
	return q.guard.Validate(ErrListDonationsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListDonationsQuery) Status() *donation.Status {
	return q.status
}

// Category returns the lower-cased category filter, empty for none.
func (q ListDonationsQuery) Category() string {
	return q.category
}

// ReservedBy returns the optional reserving organization filter.
func (q ListDonationsQuery) ReservedBy() *kernel.UUID {
	return q.reservedBy
}
