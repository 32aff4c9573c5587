package queries

import (
	"errors"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/kernel"

	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

// ErrGetDonationStatsQueryIsNotConstructed is returned when a query was not
// created through the NewGetDonationStatsQuery constructor.
var ErrGetDonationStatsQueryIsNotConstructed = errors.New(
	"GetDonationStatsQuery must be created via NewGetDonationStatsQuery constructor")

// ImpactPerCompletedDonation is the score awarded for every completed
// donation when computing an actor's impact.
const ImpactPerCompletedDonation = 10

// DonationStats are the per-actor totals shown on a dashboard. Donors are
// measured over the donations they published, organizations over the
// donations they reserved.
type DonationStats struct {
	Total       int
	Active      int
	Completed   int
	ImpactScore int
}

// GetDonationStatsQuery requests the aggregate totals for one actor.
type GetDonationStatsQuery struct { //nolint:recvcheck //using for validation
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetDonationStatsQuery creates a validated stats query for the given
// actor.
func NewGetDonationStatsQuery(requestedBy actor.Actor) (GetDonationStatsQuery, error) {
	if err := requestedBy.Validate(); err != nil {
		return GetDonationStatsQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	return GetDonationStatsQuery{
		actor: requestedBy,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the actor whose totals are requested.
func (q GetDonationStatsQuery) Actor() actor.Actor {
	return q.actor
}

// ActorID returns the identity the totals are scoped to.
func (q GetDonationStatsQuery) ActorID() kernel.UUID {
	return q.actor.ID()
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDonationStatsQueryIsNotConstructed if validation fails.
func (q GetDonationStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDonationStatsQueryIsNotConstructed)
}
