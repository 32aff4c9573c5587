package commands

import (
	"errors"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

var ErrBusinessDecisionCommandIsNotConstructed = errors.New(
	"BusinessDecisionCommand must be created via NewBusinessDecisionCommand constructor",
)

// BusinessDecisionCommand represents the donor's answer to a pending pickup:
// accept hands the donation over to the confirmation phase, reject reverts
// it to available as if it had never been reserved.
type BusinessDecisionCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	decidedBy  actor.Actor
	accept     bool

	guard guard.ConstructorGuard
}

// NewBusinessDecisionCommand creates a command recording the donor's pickup decision.
// Ownership of the donation is checked by the handler against the stored row.
func NewBusinessDecisionCommand(
	donationID kernel.UUID,
	decidedBy actor.Actor,
	accept bool,
) (BusinessDecisionCommand, error) {
	cmd := BusinessDecisionCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setDecidedBy(decidedBy),
	); err != nil {
		return BusinessDecisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBusinessDecisionCommandIsNotConstructed if validation fails.
func (c BusinessDecisionCommand) Validate() error {
	return c.guard.Validate(ErrBusinessDecisionCommandIsNotConstructed)
}

// DonationID returns the identifier of the donation being decided on.
func (c BusinessDecisionCommand) DonationID() kernel.UUID {
	return c.donationID
}

// DecidedBy returns the actor making the decision.
func (c BusinessDecisionCommand) DecidedBy() actor.Actor {
	return c.decidedBy
}

// Accept reports whether the donor accepted the pickup.
func (c BusinessDecisionCommand) Accept() bool {
	return c.accept
}

func (c *BusinessDecisionCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *BusinessDecisionCommand) setDecidedBy(decidedBy actor.Actor) error {
	if err := decidedBy.Validate(); err != nil {
		return err
	}

	c.decidedBy = decidedBy
	return nil
}
