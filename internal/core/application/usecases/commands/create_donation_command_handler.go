package commands

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/donation"
)

// CreateDonationCommandHandler handles the business logic for publishing a
// donation. New donations start in "available" status with no reservation.
//
// Example:
//
//	handler := NewCreateDonationCommandHandler(uowFactory)
//	cmd, _ := NewCreateDonationCommand(kernel.NewUUID(), donorID, details, 4.81, -75.69)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("donation creation failed: %w", err)
//	}
type CreateDonationCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewCreateDonationCommandHandler creates a handler for donation creation operations.
// Requires a DonationUoWFactory for transactional persistence.
func NewCreateDonationCommandHandler(uowFactory DonationUoWFactory) CreateDonationCommandHandler {
	return CreateDonationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the donation creation command.
// Constructs the aggregate in "available" status and persists it.
// Uses transaction to ensure the donation is properly persisted or rolled back on error.
func (h *CreateDonationCommandHandler) Handle(ctx context.Context, cmd CreateDonationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := donation.NewDonation(
		cmd.DonationID(), cmd.DonorID(), cmd.Details(), cmd.Location(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.DonationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
