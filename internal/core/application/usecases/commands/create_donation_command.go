package commands

import (
	"errors"

	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/guard"
)

var ErrCreateDonationCommandIsNotConstructed = errors.New(
	"CreateDonationCommand must be created via NewCreateDonationCommand constructor",
)

// CreateDonationCommand represents a donor's request to publish a new
// donation. Encapsulates the descriptive details and the validated pickup
// coordinates.
//
// Example:
//
//	donationID := kernel.NewUUID()
//	cmd, err := NewCreateDonationCommand(donationID, donorID, details, 4.81, -75.69)
//	if err != nil {
//	    return fmt.Errorf("invalid donation data: %w", err)
//	}
//
//	handler := NewCreateDonationCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create donation: %w", err)
//	}
type CreateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	donorID    kernel.UUID
	details    donation.Details
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateDonationCommand creates a command to publish a new donation.
// Validates the identifiers and constructs the pickup coordinates; the
// descriptive details are validated by the aggregate constructor.
func NewCreateDonationCommand(
	donationID kernel.UUID,
	donorID kernel.UUID,
	details donation.Details,
	latitude float64,
	longitude float64,
) (CreateDonationCommand, error) {
	cmd := CreateDonationCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDonationID(donationID),
		cmd.setDonorID(donorID),
		cmd.setLocation(latitude, longitude),
	); err != nil {
		return CreateDonationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDonationCommandIsNotConstructed if validation fails.
func (c CreateDonationCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonationCommandIsNotConstructed)
}

// DonationID returns the unique identifier for the new donation.
func (c CreateDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// DonorID returns the identifier of the publishing donor.
func (c CreateDonationCommand) DonorID() kernel.UUID {
	return c.donorID
}

// Details returns the descriptive donation fields.
func (c CreateDonationCommand) Details() donation.Details {
	return c.details
}

// Location returns the validated pickup coordinates.
func (c CreateDonationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateDonationCommand) setDonationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donationID = id
	return nil
}

func (c *CreateDonationCommand) setDonorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donorID = id
	return nil
}

func (c *CreateDonationCommand) setLocation(latitude, longitude float64) error {
	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
