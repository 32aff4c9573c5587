package donationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDonationRepository implements DonationRepository using GORM.
//
// Lifecycle transitions are single conditional UPDATE statements: the
// precondition travels in the WHERE clause and the affected row count tells
// whether this request won the transition. There is no read-modify-write
// window, so concurrent requests racing for the same donation resolve at the
// database without advisory locks.
type GormDonationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDonationRepository creates a new GORM donation repository.
func NewGormDonationRepository(db *gorm.DB, tracker aggregateTracker) *GormDonationRepository {
	return &GormDonationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new donation to the database.
func (r *GormDonationRepository) Add(ctx context.Context, aggregate *donation.Donation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a donation by ID.
func (r *GormDonationRepository) Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DonationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("donation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve transitions the donation from available to reserved, writing the
// reservation details and resetting the donor's pickup decision to pending.
// The status precondition rides in the WHERE clause, so when several
// reservations race exactly one observes applied=true.
func (r *GormDonationRepository) Reserve(
	ctx context.Context,
	id kernel.UUID,
	reservation donation.Reservation,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := reservation.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(donation.StatusAvailable)).
		Updates(map[string]any{
			"status":             int(donation.StatusReserved),
			"reserved_by":        reservation.ReservedBy().Bytes(),
			"reserved_at":        reservation.ReservedAt(),
			"pickup_time":        reservation.PickupTime(),
			"pickup_person_name": reservation.PersonName(),
			"pickup_person_id":   reservation.PersonID(),
			"verification_code":  reservation.Code().String(),
			"business_confirmed": false,
			"updated_at":         reservation.ReservedAt(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// AcceptPickup records the donor's acceptance of a pending pickup.
func (r *GormDonationRepository) AcceptPickup(
	ctx context.Context,
	id kernel.UUID,
	at time.Time,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("id = ? AND status = ? AND business_confirmed = ?",
			id.Bytes(), int(donation.StatusReserved), false).
		Updates(map[string]any{
			"business_confirmed":    true,
			"business_confirmed_at": at,
			"updated_at":            at,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ReleaseReservation reverts a reserved donation with a pending pickup
// decision back to available, erasing every reservation column so the row is
// indistinguishable from one that was never reserved.
func (r *GormDonationRepository) ReleaseReservation(
	ctx context.Context,
	id kernel.UUID,
	at time.Time,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("id = ? AND status = ? AND business_confirmed = ?",
			id.Bytes(), int(donation.StatusReserved), false).
		Updates(map[string]any{
			"status":             int(donation.StatusAvailable),
			"reserved_by":        nil,
			"reserved_at":        nil,
			"pickup_time":        nil,
			"pickup_person_name": nil,
			"pickup_person_id":   nil,
			"verification_code":  nil,
			"business_confirmed": nil,
			"updated_at":         at,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ConfirmHandoff records one party's handoff confirmation. The status
// promotion is folded into the same UPDATE as a CASE on the other party's
// flag, so two parties confirming concurrently can never leave the donation
// stuck in reserved with both flags set.
func (r *GormDonationRepository) ConfirmHandoff(
	ctx context.Context,
	id kernel.UUID,
	party actor.Relationship,
	at time.Time,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var myFlag, myAt, otherFlag string
	switch party {
	case actor.RelationDonor:
		myFlag, myAt, otherFlag = "donor_confirmed", "donor_confirmed_at", "recipient_confirmed"
	case actor.RelationRecipient:
		myFlag, myAt, otherFlag = "recipient_confirmed", "recipient_confirmed_at", "donor_confirmed"
	default:
		return false, errs.NewValueIsInvalidErrorWithCause("party",
			fmt.Errorf("%d is not a confirming party", party))
	}

	result := r.db.WithContext(ctx).Model(&DonationDTO{}).
		Where("id = ? AND status = ? AND business_confirmed = ? AND "+myFlag+" = ?",
			id.Bytes(), int(donation.StatusReserved), true, false).
		Updates(map[string]any{
			myFlag: true,
			myAt:   at,
			"status": gorm.Expr(
				"CASE WHEN "+otherFlag+" THEN ? ELSE status END",
				int(donation.StatusCompleted)),
			"completed_at": gorm.Expr(
				"CASE WHEN "+otherFlag+" THEN ? ELSE completed_at END", at),
			"updated_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
