package commands_test

import (
	"testing"
	"time"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// confirmableDonation builds a reserved donation with an accepted pickup and
// the given per-party confirmation flags. When both parties confirmed the
// donation is completed.
func confirmableDonation(
	t *testing.T,
	donationID, donorID, orgID kernel.UUID,
	donorConfirmed, recipientConfirmed bool,
) *donation.Donation {
	t.Helper()

	now := time.Now().UTC()
	code, err := donation.NewVerificationCode("123456")
	require.NoError(t, err)
	reservation, err := donation.NewReservation(
		orgID, now, "2024-01-01T10:00", "Ana Ruiz", "1029384756", code)
	require.NoError(t, err)

	location, err := kernel.NewGeoPoint(4.81, -75.69)
	require.NoError(t, err)

	accepted := true
	snapshot := donation.Snapshot{
		ID:                  donationID,
		DonorID:             donorID,
		Details:             validDetails(),
		Location:            location,
		Status:              donation.StatusReserved,
		Reservation:         &reservation,
		BusinessConfirmed:   &accepted,
		BusinessConfirmedAt: &now,
		DonorConfirmed:      donorConfirmed,
		RecipientConfirmed:  recipientConfirmed,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if donorConfirmed {
		snapshot.DonorConfirmedAt = &now
	}
	if recipientConfirmed {
		snapshot.RecipientConfirmedAt = &now
	}
	if donorConfirmed && recipientConfirmed {
		snapshot.Status = donation.StatusCompleted
		snapshot.CompletedAt = &now
	}

	aggregate, err := donation.RestoreDonation(snapshot)
	require.NoError(t, err)
	return aggregate
}

func TestConfirmPickupCommandHandler_Handle_DonorConfirmsFirst(t *testing.T) {
	ctx := t.Context()
	donor := donorActor(t)
	orgID := kernel.NewUUID()
	donationID := kernel.NewUUID()
	cmd, err := commands.NewConfirmPickupCommand(donationID, donor, "123456")
	require.NoError(t, err)

	before := confirmableDonation(t, donationID, donor.ID(), orgID, false, false)
	after := confirmableDonation(t, donationID, donor.ID(), orgID, true, false)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, donationID).Return(before, nil).Once(),
		repo.On("ConfirmHandoff", mock.Anything, donationID, actor.RelationDonor,
			mock.AnythingOfType("time.Time")).Return(true, nil).Once(),
		repo.On("Get", mock.Anything, donationID).Return(after, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, result.Completed)
	assert.Equal(t, actor.RelationDonor, result.Party)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_SecondConfirmationCompletes(t *testing.T) {
	ctx := t.Context()
	org := organizationActor(t)
	donorID := kernel.NewUUID()
	donationID := kernel.NewUUID()
	cmd, err := commands.NewConfirmPickupCommand(donationID, org, "123456")
	require.NoError(t, err)

	before := confirmableDonation(t, donationID, donorID, org.ID(), true, false)
	after := confirmableDonation(t, donationID, donorID, org.ID(), true, true)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, donationID).Return(before, nil).Once(),
		repo.On("ConfirmHandoff", mock.Anything, donationID, actor.RelationRecipient,
			mock.AnythingOfType("time.Time")).Return(true, nil).Once(),
		repo.On("Get", mock.Anything, donationID).Return(after, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, actor.RelationRecipient, result.Party)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	donor := donorActor(t)
	donationID := kernel.NewUUID()
	cmd, err := commands.NewConfirmPickupCommand(donationID, donor, "999999")
	require.NoError(t, err)

	aggregate := confirmableDonation(t, donationID, donor.ID(), kernel.NewUUID(), false, false)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, donationID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_UnrelatedActor(t *testing.T) {
	ctx := t.Context()
	donationID := kernel.NewUUID()
	cmd, err := commands.NewConfirmPickupCommand(donationID, organizationActor(t), "123456")
	require.NoError(t, err)

	// Neither the donor nor the reserver
	aggregate := confirmableDonation(t, donationID, kernel.NewUUID(), kernel.NewUUID(), false, false)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, donationID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrActionForbidden)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_RepeatConfirmation(t *testing.T) {
	ctx := t.Context()
	donor := donorActor(t)
	donationID := kernel.NewUUID()
	cmd, err := commands.NewConfirmPickupCommand(donationID, donor, "123456")
	require.NoError(t, err)

	aggregate := confirmableDonation(t, donationID, donor.ID(), kernel.NewUUID(), true, false)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, donationID).Return(aggregate, nil).Once(),
		repo.On("ConfirmHandoff", mock.Anything, donationID, actor.RelationDonor,
			mock.AnythingOfType("time.Time")).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_NotReserved(t *testing.T) {
	ctx := t.Context()
	donor := donorActor(t)
	donationID := kernel.NewUUID()
	cmd, err := commands.NewConfirmPickupCommand(donationID, donor, "123456")
	require.NoError(t, err)

	location, err := kernel.NewGeoPoint(4.81, -75.69)
	require.NoError(t, err)
	available, err := donation.NewDonation(
		donationID, donor.ID(), validDetails(), location, time.Now().UTC())
	require.NoError(t, err)

	repo := new(MockDonationRepository)
	uow := new(MockDonationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DonationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, donationID).Return(available, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDonationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPickupCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
