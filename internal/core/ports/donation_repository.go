package ports

import (
	"context"
	"time"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"
)

// DonationRepository defines the persistence contract for donation aggregates.
//
// Lifecycle transitions are expressed as conditional updates: each method
// states the precondition it requires and reports, via its applied result,
// whether the stored row still satisfied it at update time. A false result
// with a nil error means another request won the race, not that the update
// failed. Callers translate it into a state conflict without ever holding a
// read-modify-write window open.
type DonationRepository interface {
	// Add persists a new donation aggregate to storage.
	// The donation must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *donation.Donation) error

	// Get retrieves a donation aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such donation exists.
	Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// Reserve places a reservation on the donation if and only if it is
	// still available. The reservation carries the reserving organization,
	// pickup logistics and the verification code; the donor's pickup
	// decision is reset to pending in the same update.
	Reserve(ctx context.Context, id kernel.UUID, reservation donation.Reservation) (applied bool, err error)

	// AcceptPickup records the donor's acceptance of the pending pickup.
	// Applies only while the donation is reserved and the decision is
	// still pending.
	AcceptPickup(ctx context.Context, id kernel.UUID, at time.Time) (applied bool, err error)

	// ReleaseReservation reverts a reserved donation to available, erasing
	// the reservation, the verification code and the pending decision.
	// Applies only while the donation is reserved and the decision is
	// still pending.
	ReleaseReservation(ctx context.Context, id kernel.UUID, at time.Time) (applied bool, err error)

	// ConfirmHandoff records one party's handoff confirmation and, in the
	// same update, promotes the donation to completed when the other party
	// has already confirmed. Applies only while the donation is reserved,
	// the pickup was accepted and the given party has not yet confirmed.
	ConfirmHandoff(ctx context.Context, id kernel.UUID, party actor.Relationship, at time.Time) (applied bool, err error)
}
