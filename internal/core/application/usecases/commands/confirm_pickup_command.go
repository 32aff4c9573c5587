package commands

import (
	"errors"
	"strings"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents one party's confirmation of the physical
// handoff, authorized by the verification code issued at reservation time.
// The donation completes once both the donor side and the recipient side
// have confirmed.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	donationID  kernel.UUID
	confirmedBy actor.Actor
	code        string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command confirming the handoff.
// The code is trimmed here; matching against the stored code happens in the
// handler once the donation is loaded.
func NewConfirmPickupCommand(
	donationID kernel.UUID,
	confirmedBy actor.Actor,
	code string,
) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setConfirmedBy(confirmedBy),
		cmd.setCode(code),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmPickupCommandIsNotConstructed if validation fails.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// DonationID returns the identifier of the donation being confirmed.
func (c ConfirmPickupCommand) DonationID() kernel.UUID {
	return c.donationID
}

// ConfirmedBy returns the confirming actor.
func (c ConfirmPickupCommand) ConfirmedBy() actor.Actor {
	return c.confirmedBy
}

// Code returns the trimmed verification code presented by the caller.
func (c ConfirmPickupCommand) Code() string {
	return c.code
}

func (c *ConfirmPickupCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *ConfirmPickupCommand) setConfirmedBy(confirmedBy actor.Actor) error {
	if err := confirmedBy.Validate(); err != nil {
		return err
	}

	c.confirmedBy = confirmedBy
	return nil
}

func (c *ConfirmPickupCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("verificationCode")
	}

	c.code = code
	return nil
}
