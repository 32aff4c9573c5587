package queries

import (
	"errors"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/kernel"

	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

// ErrGetMyDonationsQueryIsNotConstructed is returned when a query was not
// created through the NewGetMyDonationsQuery constructor.
var ErrGetMyDonationsQueryIsNotConstructed = errors.New(
	"GetMyDonationsQuery must be created via NewGetMyDonationsQuery constructor")

// DonationRole labels how the requesting actor relates to a returned
// donation: donations they gave versus donations they received.
type DonationRole string

const (
	DonationRoleGiven    DonationRole = "given"
	DonationRoleReceived DonationRole = "received"
)

// MyDonation is one entry of a personal donation history, the summary plus
// the side the actor stood on.
type MyDonation struct {
	DonationSummary
	Role DonationRole
}

// GetMyDonationsQuery requests the donation history of one actor: every
// donation they created plus every donation they reserved.
type GetMyDonationsQuery struct { //nolint:recvcheck //using for validation
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetMyDonationsQuery creates a validated history query for the given
// actor.
func NewGetMyDonationsQuery(requestedBy actor.Actor) (GetMyDonationsQuery, error) {
	if err := requestedBy.Validate(); err != nil {
		return GetMyDonationsQuery{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}

	return GetMyDonationsQuery{
		actor: requestedBy,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the actor whose history is requested.
func (q GetMyDonationsQuery) Actor() actor.Actor {
	return q.actor
}

// ActorID returns the identity the history is scoped to.
func (q GetMyDonationsQuery) ActorID() kernel.UUID {
	return q.actor.ID()
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyDonationsQueryIsNotConstructed if validation fails.
func (q GetMyDonationsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDonationsQueryIsNotConstructed)
}
