package commands_test

import (
	"errors"
	"testing"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDonationBatchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationBatchCommand(donorID, batchItems(t, donorID, 3))
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*donation.Donation")).Return(nil).Times(3),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDonationBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDonationBatchCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDonationBatchCommand{} // not constructed properly
	factory := new(MockDonationUoWFactory)
	h := commands.NewCreateDonationBatchCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateDonationBatchCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	donorID := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationBatchCommand(donorID, batchItems(t, donorID, 2))
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*donation.Donation")).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*donation.Donation")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDonationBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
