package donation

import (
	"errors"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/guard"
)

const (
	// PickupPersonIDMinLength is the minimum length of the pickup person's
	// identity document number.
	PickupPersonIDMinLength = 6
	// PickupPersonIDMaxLength is the maximum length of the pickup person's
	// identity document number.
	PickupPersonIDMaxLength = 20
)

// ErrReservationIsNotConstructed is returned when a Reservation was not
// created through the NewReservation constructor.
var ErrReservationIsNotConstructed = errors.New("Reservation must be created via NewReservation constructor")

// Reservation bundles everything an organization attaches when it claims an
// available donation: who reserved it and when, the proposed pickup
// logistics, and the verification code minted for the handoff. A donation
// carries exactly one Reservation while reserved or completed, and none
// while available.
type Reservation struct { //nolint:recvcheck //using for validation
	reservedByID kernel.UUID
	reservedAt   time.Time
	pickupTime   string
	personName   string
	personID     string
	code         VerificationCode

	guard guard.ConstructorGuard
}

// NewReservation creates a validated Reservation.
// pickupTime is display data and is stored verbatim after trimming;
// personID must be 6 to 20 characters long.
func NewReservation(
	reservedBy kernel.UUID,
	reservedAt time.Time,
	pickupTime string,
	personName string,
	personID string,
	code VerificationCode,
) (Reservation, error) {
	res := Reservation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		res.setReservedBy(reservedBy),
		res.setReservedAt(reservedAt),
		res.setPickupTime(pickupTime),
		res.setPersonName(personName),
		res.setPersonID(personID),
		res.setCode(code),
	); err != nil {
		return Reservation{}, err
	}

	return res, nil
}

// Validate ensures the reservation was created through the constructor.
func (r Reservation) Validate() error {
	return r.guard.Validate(ErrReservationIsNotConstructed)
}

// ReservedBy returns the id of the organization holding the reservation.
func (r Reservation) ReservedBy() kernel.UUID {
	return r.reservedByID
}

// ReservedAt returns when the reservation was placed.
func (r Reservation) ReservedAt() time.Time {
	return r.reservedAt
}

// PickupTime returns the proposed pickup time exactly as submitted.
func (r Reservation) PickupTime() string {
	return r.pickupTime
}

// PersonName returns the name of the person collecting the donation.
func (r Reservation) PersonName() string {
	return r.personName
}

// PersonID returns the identity document number of the collecting person.
func (r Reservation) PersonID() string {
	return r.personID
}

// Code returns the verification code minted for this reservation.
func (r Reservation) Code() VerificationCode {
	return r.code
}

func (r *Reservation) setReservedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.reservedByID = id
	return nil
}

func (r *Reservation) setReservedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("reservedAt")
	}
	r.reservedAt = at
	return nil
}

func (r *Reservation) setPickupTime(pickupTime string) error {
	pickupTime = strings.TrimSpace(pickupTime)
	if pickupTime == "" {
		return errs.NewValueIsRequiredError("pickupTime")
	}
	r.pickupTime = pickupTime
	return nil
}

func (r *Reservation) setPersonName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("pickupPersonName")
	}
	r.personName = name
	return nil
}

func (r *Reservation) setPersonID(personID string) error {
	personID = strings.TrimSpace(personID)
	if personID == "" {
		return errs.NewValueIsRequiredError("pickupPersonID")
	}
	if len(personID) < PickupPersonIDMinLength || len(personID) > PickupPersonIDMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"pickupPersonID length", len(personID), PickupPersonIDMinLength, PickupPersonIDMaxLength)
	}
	r.personID = personID
	return nil
}

func (r *Reservation) setCode(code VerificationCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	r.code = code
	return nil
}
