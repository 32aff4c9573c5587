package commands

import (
	"errors"
	"fmt"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

// BatchMaxSize is the maximum number of donations accepted in one batch.
const BatchMaxSize = 20

var ErrCreateDonationBatchCommandIsNotConstructed = errors.New(
	"CreateDonationBatchCommand must be created via NewCreateDonationBatchCommand constructor",
)

// CreateDonationBatchCommand represents a donor's request to publish several
// donations at once. The whole batch is validated up front: the first invalid
// item rejects the entire command with its position in the error, and the
// handler inserts all items inside one transaction so the batch is
// all-or-nothing.
type CreateDonationBatchCommand struct { //nolint:recvcheck //using for validation
	donorID kernel.UUID
	items   []CreateDonationCommand

	guard guard.ConstructorGuard
}

// NewCreateDonationBatchCommand creates a command to publish a batch of
// donations. The batch must contain between 1 and BatchMaxSize items and
// every item must individually be a valid creation command for the same
// donor.
func NewCreateDonationBatchCommand(
	donorID kernel.UUID,
	items []CreateDonationCommand,
) (CreateDonationBatchCommand, error) {
	cmd := CreateDonationBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDonorID(donorID); err != nil {
		return CreateDonationBatchCommand{}, err
	}
	if err := cmd.setItems(items); err != nil {
		return CreateDonationBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDonationBatchCommandIsNotConstructed if validation fails.
func (c CreateDonationBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateDonationBatchCommandIsNotConstructed)
}

// DonorID returns the identifier of the publishing donor.
func (c CreateDonationBatchCommand) DonorID() kernel.UUID {
	return c.donorID
}

// Items returns the validated per-donation creation commands.
func (c CreateDonationBatchCommand) Items() []CreateDonationCommand {
	return c.items
}

func (c *CreateDonationBatchCommand) setDonorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.donorID = id
	return nil
}

func (c *CreateDonationBatchCommand) setItems(items []CreateDonationCommand) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("donations")
	}
	if len(items) > BatchMaxSize {
		return errs.NewValueIsOutOfRangeError("donations", len(items), 1, BatchMaxSize)
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"donations", fmt.Errorf("item %d: %w", i, err))
		}
		if !item.DonorID().IsEqual(c.donorID) {
			return errs.NewValueIsInvalidErrorWithCause(
				"donations", fmt.Errorf("item %d: donor mismatch", i))
		}
	}

	c.items = items
	return nil
}
