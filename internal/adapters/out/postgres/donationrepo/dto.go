// Package donationrepo provides data transfer objects and mapping functions for donation persistence.
// This package implements the repository pattern for the donation domain aggregate, handling
// the conversion between domain entities and database representations.
package donationrepo

import (
	"time"

	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonationDTO represents the database structure for persisting donation aggregates.
// Reservation and confirmation columns are nullable and populated only while a
// reservation exists, mirroring the aggregate's lifecycle invariants.
type DonationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonorID uuid.UUID `gorm:"type:uuid;index"`

	Title          string
	Description    string
	Category       string `gorm:"index"`
	Quantity       int
	Weight         *float64
	DonationReason *string
	ContactInfo    *string
	ExpiryDate     *string
	PickupAddress  string
	Location       GeoPointDTO `gorm:"embedded"`

	Status int `gorm:"index"`

	ReservedBy       *uuid.UUID `gorm:"type:uuid;index"`
	ReservedAt       *time.Time
	PickupTime       *string
	PickupPersonName *string
	PickupPersonID   *string
	VerificationCode *string

	BusinessConfirmed    *bool
	BusinessConfirmedAt  *time.Time
	DonorConfirmed       bool
	DonorConfirmedAt     *time.Time
	RecipientConfirmed   bool
	RecipientConfirmedAt *time.Time
	CompletedAt          *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for donation entities.
// Overrides GORM's default naming convention to use "donations".
func (DonationDTO) TableName() string {
	return "donations"
}

// GeoPointDTO represents the embedded pickup coordinates within the donation table.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a donation domain aggregate to its database representation.
func fromDomain(aggregate *donation.Donation) DonationDTO {
	dto := DonationDTO{
		ID:             aggregate.ID().Bytes(),
		DonorID:        aggregate.DonorID().Bytes(),
		Title:          aggregate.Title(),
		Description:    aggregate.Description(),
		Category:       aggregate.Category(),
		Quantity:       aggregate.Quantity(),
		Weight:         aggregate.Weight(),
		DonationReason: aggregate.DonationReason(),
		ContactInfo:    aggregate.ContactInfo(),
		ExpiryDate:     aggregate.ExpiryDate(),
		PickupAddress:  aggregate.PickupAddress(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		Status:               int(aggregate.Status()),
		BusinessConfirmed:    aggregate.BusinessConfirmed(),
		BusinessConfirmedAt:  aggregate.BusinessConfirmedAt(),
		DonorConfirmed:       aggregate.DonorConfirmed(),
		DonorConfirmedAt:     aggregate.DonorConfirmedAt(),
		RecipientConfirmed:   aggregate.RecipientConfirmed(),
		RecipientConfirmedAt: aggregate.RecipientConfirmedAt(),
		CompletedAt:          aggregate.CompletedAt(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}

	if res := aggregate.Reservation(); res != nil {
		reservedBy := res.ReservedBy().Bytes()
		reservedAt := res.ReservedAt()
		pickupTime := res.PickupTime()
		personName := res.PersonName()
		personID := res.PersonID()
		code := res.Code().String()

		dto.ReservedBy = &reservedBy
		dto.ReservedAt = &reservedAt
		dto.PickupTime = &pickupTime
		dto.PickupPersonName = &personName
		dto.PickupPersonID = &personID
		dto.VerificationCode = &code
	}

	return dto
}

// toDomain converts a database DTO to a donation domain aggregate.
// Reconstructs the complete aggregate including the reservation and
// confirmation state using RestoreDonation.
func toDomain(dto DonationDTO) (*donation.Donation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	donorID, err := kernel.UUIDFromBytes(dto.DonorID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	var reservation *donation.Reservation
	if dto.ReservedBy != nil {
		reservedBy, resErr := kernel.UUIDFromBytes((*dto.ReservedBy)[:])
		if resErr != nil {
			return nil, resErr
		}

		code, resErr := donation.NewVerificationCode(deref(dto.VerificationCode))
		if resErr != nil {
			return nil, resErr
		}

		res, resErr := donation.NewReservation(
			reservedBy,
			derefTime(dto.ReservedAt),
			deref(dto.PickupTime),
			deref(dto.PickupPersonName),
			deref(dto.PickupPersonID),
			code,
		)
		if resErr != nil {
			return nil, resErr
		}
		reservation = &res
	}

	return donation.RestoreDonation(donation.Snapshot{
		ID:      id,
		DonorID: donorID,
		Details: donation.Details{
			Title:          dto.Title,
			Description:    dto.Description,
			Category:       dto.Category,
			Quantity:       dto.Quantity,
			Weight:         dto.Weight,
			DonationReason: dto.DonationReason,
			ContactInfo:    dto.ContactInfo,
			ExpiryDate:     dto.ExpiryDate,
			PickupAddress:  dto.PickupAddress,
		},
		Location:             location,
		Status:               donation.Status(dto.Status),
		Reservation:          reservation,
		BusinessConfirmed:    dto.BusinessConfirmed,
		BusinessConfirmedAt:  dto.BusinessConfirmedAt,
		DonorConfirmed:       dto.DonorConfirmed,
		DonorConfirmedAt:     dto.DonorConfirmedAt,
		RecipientConfirmed:   dto.RecipientConfirmed,
		RecipientConfirmedAt: dto.RecipientConfirmedAt,
		CompletedAt:          dto.CompletedAt,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
