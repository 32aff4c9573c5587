package commands

import (
	"context"
	"time"

	"foodshare/internal/pkg/errs"
)

// BusinessDecisionCommandHandler handles the donor's pickup decision.
// Only the donor who published the donation may decide. Both outcomes apply
// as a conditional update requiring the donation to be reserved with the
// decision still pending; a rejection erases the reservation entirely so the
// donation returns to its pristine available shape.
type BusinessDecisionCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewBusinessDecisionCommandHandler creates a handler for pickup decisions.
// Requires a DonationUoWFactory for transactional persistence.
func NewBusinessDecisionCommandHandler(uowFactory DonationUoWFactory) BusinessDecisionCommandHandler {
	return BusinessDecisionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup decision command.
// Loads the donation to verify ownership, then applies the accept or reject
// transition conditionally; a non-applied update means the reservation state
// changed underneath the donor and surfaces as a state conflict.
func (h *BusinessDecisionCommandHandler) Handle(ctx context.Context, cmd BusinessDecisionCommand) error {
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

	repo := uow.DonationRepository()

	aggregate, err := repo.Get(ctx, cmd.DonationID())
	if err != nil {
		return err
	}

	if !aggregate.DonorID().IsEqual(cmd.DecidedBy().ID()) {
		return errs.NewActionForbiddenError("business decision")
	}

	now := time.Now().UTC()

	var applied bool
	if cmd.Accept() {
		applied, err = repo.AcceptPickup(ctx, cmd.DonationID(), now)
	} else {
		applied, err = repo.ReleaseReservation(ctx, cmd.DonationID(), now)
	}
	if err != nil {
		return err
	}
	if !applied {
		return errs.NewStateConflictError("donation has no pending pickup decision")
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
