package commands

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/donation"
)

// CreateDonationBatchCommandHandler handles the business logic for publishing
// several donations at once. All inserts run inside one transaction, so a
// failure on any item leaves no donation behind.
type CreateDonationBatchCommandHandler struct {
	uowFactory DonationUoWFactory
}

// NewCreateDonationBatchCommandHandler creates a handler for batch donation creation.
// Requires a DonationUoWFactory for transactional persistence.
func NewCreateDonationBatchCommandHandler(uowFactory DonationUoWFactory) CreateDonationBatchCommandHandler {
	return CreateDonationBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch creation command.
// Every donation in the batch is constructed and persisted within a single
// transaction; the first failure rolls back the whole batch.
func (h *CreateDonationBatchCommandHandler) Handle(ctx context.Context, cmd CreateDonationBatchCommand) error {
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
	now := time.Now().UTC()

	for _, item := range cmd.Items() {
		aggregate, err := donation.NewDonation(
			item.DonationID(), item.DonorID(), item.Details(), item.Location(), now)
		if err != nil {
			return err
		}

		if err = repo.Add(ctx, aggregate); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
