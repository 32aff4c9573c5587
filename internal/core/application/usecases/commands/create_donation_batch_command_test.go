package commands_test

import (
	"testing"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchItems(t *testing.T, donorID kernel.UUID, n int) []commands.CreateDonationCommand {
	t.Helper()
	items := make([]commands.CreateDonationCommand, 0, n)
	for range n {
		item, err := commands.NewCreateDonationCommand(
			kernel.NewUUID(), donorID, validDetails(), 4.81, -75.69)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func TestNewCreateDonationBatchCommand_ValidInput(t *testing.T) {
	donorID := kernel.NewUUID()
	items := batchItems(t, donorID, 3)

	cmd, err := commands.NewCreateDonationBatchCommand(donorID, items)
	require.NoError(t, err)
	assert.Equal(t, donorID, cmd.DonorID())
	assert.Len(t, cmd.Items(), 3)
}

func TestNewCreateDonationBatchCommand_EmptyBatch(t *testing.T) {
	_, err := commands.NewCreateDonationBatchCommand(kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateDonationBatchCommand_BatchTooLarge(t *testing.T) {
	donorID := kernel.NewUUID()
	items := batchItems(t, donorID, commands.BatchMaxSize+1)

	_, err := commands.NewCreateDonationBatchCommand(donorID, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateDonationBatchCommand_MaxSizeAccepted(t *testing.T) {
	donorID := kernel.NewUUID()
	items := batchItems(t, donorID, commands.BatchMaxSize)

	cmd, err := commands.NewCreateDonationBatchCommand(donorID, items)
	require.NoError(t, err)
	assert.Len(t, cmd.Items(), commands.BatchMaxSize)
}

func TestNewCreateDonationBatchCommand_InvalidItem(t *testing.T) {
	donorID := kernel.NewUUID()
	items := batchItems(t, donorID, 2)
	items = append(items, commands.CreateDonationCommand{}) // not constructed

	_, err := commands.NewCreateDonationBatchCommand(donorID, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 2")
}

func TestNewCreateDonationBatchCommand_DonorMismatch(t *testing.T) {
	donorID := kernel.NewUUID()
	items := batchItems(t, donorID, 1)
	items = append(items, batchItems(t, kernel.NewUUID(), 1)...)

	_, err := commands.NewCreateDonationBatchCommand(donorID, items)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "donor mismatch")
}
