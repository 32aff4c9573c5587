package commands

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/pkg/errs"
)

// ReserveDonationResult carries the outcome of a successful reservation back
// to the caller: the verification code the collecting person must present
// and the pickup logistics as recorded.
type ReserveDonationResult struct {
	VerificationCode string
	ReservedAt       time.Time
	PickupTime       string
	PickupPersonName string
}

// ReserveDonationCommandHandler handles the business logic for reserving a
// donation. The availability check and the reservation write are one
// conditional update, so two organizations racing for the same donation can
// never both win.
type ReserveDonationCommandHandler struct {
	uowFactory    DonationUoWFactory
	codeGenerator donation.CodeGenerator
}

// NewReserveDonationCommandHandler creates a handler for reservation operations.
// The code generator is injected so tests can pin the verification code.
func NewReserveDonationCommandHandler(
	uowFactory DonationUoWFactory,
	codeGenerator donation.CodeGenerator,
) ReserveDonationCommandHandler {
	return ReserveDonationCommandHandler{
		uowFactory:    uowFactory,
		codeGenerator: codeGenerator,
	}
}

// Handle processes the reservation command.
// Generates a fresh verification code, then attempts the conditional
// transition from available to reserved. When the update does not apply the
// handler distinguishes a missing donation from one that is no longer
// available.
func (h *ReserveDonationCommandHandler) Handle(
	ctx context.Context,
	cmd ReserveDonationCommand,
) (ReserveDonationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReserveDonationResult{}, err
	}

	now := time.Now().UTC()
	reservation, err := donation.NewReservation(
		cmd.ReservedBy().ID(),
		now,
		cmd.PickupTime(),
		cmd.PersonName(),
		cmd.PersonID(),
		h.codeGenerator.Generate(),
	)
	if err != nil {
		return ReserveDonationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ReserveDonationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DonationRepository()

	applied, err := repo.Reserve(ctx, cmd.DonationID(), reservation)
	if err != nil {
		return ReserveDonationResult{}, err
	}
	if !applied {
		// Either the donation does not exist or someone else won it
		if _, getErr := repo.Get(ctx, cmd.DonationID()); getErr != nil {
			return ReserveDonationResult{}, getErr
		}
		return ReserveDonationResult{}, errs.NewStateConflictError("donation is not available")
	}

	if err = uow.Commit(ctx); err != nil {
		return ReserveDonationResult{}, err
	}

	return ReserveDonationResult{
		VerificationCode: reservation.Code().String(),
		ReservedAt:       reservation.ReservedAt(),
		PickupTime:       reservation.PickupTime(),
		PickupPersonName: reservation.PersonName(),
	}, nil
}
