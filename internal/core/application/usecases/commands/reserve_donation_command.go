package commands

import (
	"errors"
	"strings"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

var ErrReserveDonationCommandIsNotConstructed = errors.New(
	"ReserveDonationCommand must be created via NewReserveDonationCommand constructor",
)

// ReserveDonationCommand represents an organization's request to reserve an
// available donation, carrying the pickup logistics the donor will see.
// Only organization actors may reserve; donors attempting to reserve get an
// action forbidden error from the constructor.
//
// Example:
//
//	cmd, err := NewReserveDonationCommand(donationID, org, "2024-01-01T10:00", "Ana Ruiz", "1029384756")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewReserveDonationCommandHandler(uowFactory, codeGenerator)
//	result, err := handler.Handle(ctx, cmd)
type ReserveDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	reservedBy actor.Actor
	pickupTime string
	personName string
	personID   string

	guard guard.ConstructorGuard
}

// NewReserveDonationCommand creates a command to reserve a donation.
// Validates that the actor is an organization, the pickup time and person
// name are present, and the person document number is 6 to 20 characters.
func NewReserveDonationCommand(
	donationID kernel.UUID,
	reservedBy actor.Actor,
	pickupTime string,
	personName string,
	personID string,
) (ReserveDonationCommand, error) {
	cmd := ReserveDonationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setReservedBy(reservedBy),
		cmd.setPickupTime(pickupTime),
		cmd.setPersonName(personName),
		cmd.setPersonID(personID),
	); err != nil {
		return ReserveDonationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReserveDonationCommandIsNotConstructed if validation fails.
func (c ReserveDonationCommand) Validate() error {
	return c.guard.Validate(ErrReserveDonationCommandIsNotConstructed)
}

// DonationID returns the identifier of the donation to reserve.
func (c ReserveDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// ReservedBy returns the reserving organization actor.
func (c ReserveDonationCommand) ReservedBy() actor.Actor {
	return c.reservedBy
}

// PickupTime returns the agreed pickup time, stored verbatim.
func (c ReserveDonationCommand) PickupTime() string {
	return c.pickupTime
}

// PersonName returns the name of the person who will collect the donation.
func (c ReserveDonationCommand) PersonName() string {
	return c.personName
}

// PersonID returns the document number of the collecting person.
func (c ReserveDonationCommand) PersonID() string {
	return c.personID
}

func (c *ReserveDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *ReserveDonationCommand) setReservedBy(reservedBy actor.Actor) error {
	if err := reservedBy.Validate(); err != nil {
		return err
	}
	if !reservedBy.IsOrganization() {
		return errs.NewActionForbiddenError("reserve donation")
	}

	c.reservedBy = reservedBy
	return nil
}

func (c *ReserveDonationCommand) setPickupTime(pickupTime string) error {
	pickupTime = strings.TrimSpace(pickupTime)
	if pickupTime == "" {
		return errs.NewValueIsRequiredError("pickupTime")
	}

	c.pickupTime = pickupTime
	return nil
}

func (c *ReserveDonationCommand) setPersonName(personName string) error {
	personName = strings.TrimSpace(personName)
	if personName == "" {
		return errs.NewValueIsRequiredError("pickupPersonName")
	}

	c.personName = personName
	return nil
}

func (c *ReserveDonationCommand) setPersonID(personID string) error {
	personID = strings.TrimSpace(personID)
	if personID == "" {
		return errs.NewValueIsRequiredError("pickupPersonId")
	}
	if len(personID) < donation.PickupPersonIDMinLength || len(personID) > donation.PickupPersonIDMaxLength {
		return errs.NewValueIsOutOfRangeError("pickupPersonId", personID,
			donation.PickupPersonIDMinLength, donation.PickupPersonIDMaxLength)
	}

	c.personID = personID
	return nil
}
