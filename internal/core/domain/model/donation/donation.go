package donation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"
)

// ErrDonationIsNotConstructed is returned when a Donation instance was not
// created through NewDonation or RestoreDonation. This ensures all donations
// are properly validated.
var ErrDonationIsNotConstructed = errors.New(
	"Donation must be created via NewDonation or RestoreDonation constructor")

// Details carries the descriptive fields a donor supplies when publishing a
// donation. Title, description and category are required; category is
// normalized to lower case. Quantity counts indivisible units and must be
// positive. The remaining fields are optional pass-through data.
type Details struct {
	Title          string
	Description    string
	Category       string
	Quantity       int
	Weight         *float64
	DonationReason *string
	ContactInfo    *string
	ExpiryDate     *string
	PickupAddress  string
}

// Snapshot is the full persisted state of a donation, used to rehydrate the
// aggregate from storage. RestoreDonation validates the snapshot against the
// lifecycle invariants, so a row that drifted into an impossible state is
// rejected instead of silently accepted.
type Snapshot struct {
	ID                   kernel.UUID
	DonorID              kernel.UUID
	Details              Details
	Location             kernel.GeoPoint
	Status               Status
	Reservation          *Reservation
	BusinessConfirmed    *bool
	BusinessConfirmedAt  *time.Time
	DonorConfirmed       bool
	DonorConfirmedAt     *time.Time
	RecipientConfirmed   bool
	RecipientConfirmedAt *time.Time
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Donation is the aggregate root of the lifecycle: one unit of surplus food
// offered for pickup, moving through available, reserved and completed
// states under the invariants below.
//
// Invariants held at rest and enforced by every rehydration:
//   - a Reservation (including the verification code and pickup logistics)
//     is present exactly while the status is reserved or completed
//   - business confirmation is tri-state: unset while available, explicitly
//     false or true while a reservation exists
//   - neither party's confirmation can be set unless the donor accepted the
//     pickup (business confirmation true)
//   - the status is completed exactly when both parties confirmed, and only
//     then is the completion timestamp set
//
// State transitions themselves are applied by the store as atomic
// conditional updates; the aggregate models the data and its invariants.
type Donation struct {
	id      kernel.UUID
	donorID kernel.UUID

	title          string
	description    string
	category       string
	quantity       int
	weight         *float64
	donationReason *string
	contactInfo    *string
	expiryDate     *string
	pickupAddress  string
	location       kernel.GeoPoint

	status      Status
	reservation *Reservation

	businessConfirmed    *bool
	businessConfirmedAt  *time.Time
	donorConfirmed       bool
	donorConfirmedAt     *time.Time
	recipientConfirmed   bool
	recipientConfirmedAt *time.Time
	completedAt          *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDonation creates a freshly published donation in the available state
// with all reservation and confirmation fields unset.
//
// The pickup address defaults to a textual rendering of the coordinates when
// the donor leaves it empty, matching how listings render donations that
// were published straight from a map pin.
func NewDonation(
	id kernel.UUID,
	donorID kernel.UUID,
	details Details,
	location kernel.GeoPoint,
	createdAt time.Time,
) (*Donation, error) {
	d := &Donation{
		status:        StatusAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDonorID(donorID),
		d.setLocation(location),
		d.setDetails(details),
		d.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if d.pickupAddress == "" {
		d.pickupAddress = d.location.String()
	}
	d.updatedAt = d.createdAt

	return d, nil
}

// RestoreDonation rehydrates a donation from its persisted snapshot,
// re-validating every field and the cross-field lifecycle invariants.
func RestoreDonation(s Snapshot) (*Donation, error) {
	d := &Donation{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setDonorID(s.DonorID),
		d.setLocation(s.Location),
		d.setDetails(s.Details),
		d.setCreatedAt(s.CreatedAt),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = s.Status
	d.reservation = s.Reservation
	d.businessConfirmed = s.BusinessConfirmed
	d.businessConfirmedAt = s.BusinessConfirmedAt
	d.donorConfirmed = s.DonorConfirmed
	d.donorConfirmedAt = s.DonorConfirmedAt
	d.recipientConfirmed = s.RecipientConfirmed
	d.recipientConfirmedAt = s.RecipientConfirmedAt
	d.completedAt = s.CompletedAt
	d.updatedAt = s.UpdatedAt
	if d.updatedAt.IsZero() {
		d.updatedAt = d.createdAt
	}

	if err := d.checkInvariants(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Donation instance was properly constructed through
// NewDonation or RestoreDonation.
func (d *Donation) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDonationIsNotConstructed
	}
	return nil
}

// IsEqual compares two donations by their unique identifiers.
func (d *Donation) IsEqual(other *Donation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the donation's unique identifier.
func (d *Donation) ID() kernel.UUID {
	return d.id
}

// DonorID returns the id of the donor that published the donation.
func (d *Donation) DonorID() kernel.UUID {
	return d.donorID
}

// Title returns the donation's title.
func (d *Donation) Title() string {
	return d.title
}

// Description returns the donation's description.
func (d *Donation) Description() string {
	return d.description
}

// Category returns the lower-cased donation category.
func (d *Donation) Category() string {
	return d.category
}

// Quantity returns the number of indivisible units offered.
func (d *Donation) Quantity() int {
	return d.quantity
}

// Weight returns the optional weight, nil when not supplied.
func (d *Donation) Weight() *float64 {
	return d.weight
}

// DonationReason returns the optional free-text reason.
func (d *Donation) DonationReason() *string {
	return d.donationReason
}

// ContactInfo returns the optional contact information.
func (d *Donation) ContactInfo() *string {
	return d.contactInfo
}

// ExpiryDate returns the optional expiry date, stored verbatim.
func (d *Donation) ExpiryDate() *string {
	return d.expiryDate
}

// PickupAddress returns the pickup address.
func (d *Donation) PickupAddress() string {
	return d.pickupAddress
}

// Location returns the validated pickup coordinates.
func (d *Donation) Location() kernel.GeoPoint {
	return d.location
}

// Status returns the donation's current lifecycle status.
func (d *Donation) Status() Status {
	return d.status
}

// Reservation returns the active reservation, or nil while available.
func (d *Donation) Reservation() *Reservation {
	return d.reservation
}

// ReservedBy returns the id of the reserving organization, or nil while
// available.
func (d *Donation) ReservedBy() *kernel.UUID {
	if d.reservation == nil {
		return nil
	}
	id := d.reservation.ReservedBy()
	return &id
}

// BusinessConfirmed returns the donor's pickup decision: nil before any
// reservation, false while the donor's answer is pending, true once accepted.
func (d *Donation) BusinessConfirmed() *bool {
	return d.businessConfirmed
}

// BusinessConfirmedAt returns when the donor accepted the pickup, if ever.
func (d *Donation) BusinessConfirmedAt() *time.Time {
	return d.businessConfirmedAt
}

// DonorConfirmed reports whether the donor side acknowledged the handoff.
func (d *Donation) DonorConfirmed() bool {
	return d.donorConfirmed
}

// DonorConfirmedAt returns when the donor side confirmed, if it has.
func (d *Donation) DonorConfirmedAt() *time.Time {
	return d.donorConfirmedAt
}

// RecipientConfirmed reports whether the recipient side acknowledged the handoff.
func (d *Donation) RecipientConfirmed() bool {
	return d.recipientConfirmed
}

// RecipientConfirmedAt returns when the recipient side confirmed, if it has.
func (d *Donation) RecipientConfirmedAt() *time.Time {
	return d.recipientConfirmedAt
}

// CompletedAt returns when the donation completed, if it has.
func (d *Donation) CompletedAt() *time.Time {
	return d.completedAt
}

// CreatedAt returns when the donation was published.
func (d *Donation) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the donation row last changed.
func (d *Donation) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Donation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Donation) setDonorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.donorID = id
	return nil
}

func (d *Donation) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

func (d *Donation) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	d.createdAt = at
	return nil
}

func (d *Donation) setDetails(details Details) error {
	title := strings.TrimSpace(details.Title)
	description := strings.TrimSpace(details.Description)
	category := strings.ToLower(strings.TrimSpace(details.Category))

	var errList []error
	if title == "" {
		errList = append(errList, errs.NewValueIsRequiredError("title"))
	}
	if description == "" {
		errList = append(errList, errs.NewValueIsRequiredError("description"))
	}
	if category == "" {
		errList = append(errList, errs.NewValueIsRequiredError("category"))
	}
	if details.Quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", details.Quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	d.title = title
	d.description = description
	d.category = category
	d.quantity = details.Quantity
	d.weight = details.Weight
	d.donationReason = trimOptional(details.DonationReason)
	d.contactInfo = trimOptional(details.ContactInfo)
	d.expiryDate = trimOptional(details.ExpiryDate)
	d.pickupAddress = strings.TrimSpace(details.PickupAddress)
	return nil
}

// checkInvariants enforces the cross-field lifecycle invariants on a
// rehydrated donation.
func (d *Donation) checkInvariants() error {
	if d.status.HasReservation() != (d.reservation != nil) {
		return errs.NewValueIsInvalidErrorWithCause("donation state",
			fmt.Errorf("status %s and reservation presence disagree", d.status))
	}
	if d.reservation != nil {
		if err := d.reservation.Validate(); err != nil {
			return err
		}
	}

	if (d.businessConfirmed != nil) != d.status.HasReservation() {
		return errs.NewValueIsInvalidErrorWithCause("donation state",
			fmt.Errorf("status %s and business confirmation presence disagree", d.status))
	}

	businessAccepted := d.businessConfirmed != nil && *d.businessConfirmed
	if (d.donorConfirmed || d.recipientConfirmed) && !businessAccepted {
		return errs.NewValueIsInvalidErrorWithCause("donation state",
			errors.New("party confirmation without accepted pickup"))
	}

	bothConfirmed := d.donorConfirmed && d.recipientConfirmed
	if bothConfirmed != (d.status == StatusCompleted) {
		return errs.NewValueIsInvalidErrorWithCause("donation state",
			fmt.Errorf("status %s disagrees with confirmation flags", d.status))
	}
	if (d.completedAt != nil) != (d.status == StatusCompleted) {
		return errs.NewValueIsInvalidErrorWithCause("donation state",
			fmt.Errorf("status %s and completion timestamp disagree", d.status))
	}

	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
