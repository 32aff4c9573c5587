package commands

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/pkg/errs"
)

// ConfirmPickupResult reports the state the donation reached after one
// party's confirmation: still reserved while the other party is pending, or
// completed when both sides have confirmed. Party records which side the
// caller confirmed as.
type ConfirmPickupResult struct {
	Completed bool
	Party     actor.Relationship
}

// ConfirmPickupCommandHandler handles one party's handoff confirmation.
// The confirmation flag and the completion promotion are a single
// conditional update: the row promotes to completed in the same statement
// that sets the flag when the other party already confirmed, so concurrent
// confirmations by both parties cannot strand the donation in reserved.
type ConfirmPickupCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for handoff confirmations.
// Requires a DonationUoWFactory for transactional persistence.
func NewConfirmPickupCommandHandler(uowFactory DonationUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Loads the donation to resolve the caller's side and check the
// verification code, applies the conditional confirmation update, then
// re-reads only to report whether the donation completed.
func (h *ConfirmPickupCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmPickupCommand,
) (ConfirmPickupResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmPickupResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmPickupResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DonationRepository()

	aggregate, err := repo.Get(ctx, cmd.DonationID())
	if err != nil {
		return ConfirmPickupResult{}, err
	}

	party := actor.ResolveRelationship(
		cmd.ConfirmedBy().ID(), aggregate.DonorID(), aggregate.ReservedBy())
	if party == actor.RelationNone {
		return ConfirmPickupResult{}, errs.NewActionForbiddenError("confirm pickup")
	}

	reservation := aggregate.Reservation()
	if reservation == nil {
		return ConfirmPickupResult{}, errs.NewStateConflictError("donation is not reserved")
	}
	if !reservation.Code().Matches(cmd.Code()) {
		return ConfirmPickupResult{}, errs.NewValueIsInvalidError("verificationCode")
	}

	applied, err := repo.ConfirmHandoff(ctx, cmd.DonationID(), party, time.Now().UTC())
	if err != nil {
		return ConfirmPickupResult{}, err
	}
	if !applied {
		return ConfirmPickupResult{}, errs.NewStateConflictError("donation is not awaiting this confirmation")
	}

	// Re-read only to choose between "registered" and "completed"
	aggregate, err = repo.Get(ctx, cmd.DonationID())
	if err != nil {
		return ConfirmPickupResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmPickupResult{}, err
	}

	return ConfirmPickupResult{
		Completed: aggregate.CompletedAt() != nil,
		Party:     party,
	}, nil
}
