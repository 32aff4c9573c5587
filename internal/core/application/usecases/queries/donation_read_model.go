package queries

import (
	"database/sql"
	"strings"
	"time"

	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonationSummary is the read model a listing returns for one donation.
// Coordinates are already normalized; broken stored coordinates never reach
// the caller.
type DonationSummary struct {
	ID               kernel.UUID
	DonorID          kernel.UUID
	Title            string
	Description      string
	Category         string
	Quantity         int
	Weight           *float64
	DonationReason   *string
	ContactInfo      *string
	ExpiryDate       *string
	PickupAddress    string
	Location         kernel.GeoPoint
	Status           donation.Status
	ReservedBy       *kernel.UUID
	ReservedAt       *time.Time
	PickupTime       *string
	PickupPersonName *string
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// donationRow is the scan target for the shared listing SELECT. Nullable
// scan types let normalization inspect broken rows instead of failing on
// them.
type donationRow struct {
	ID               uuid.NullUUID
	DonorID          uuid.NullUUID
	Title            sql.NullString
	Description      sql.NullString
	Category         sql.NullString
	Quantity         sql.NullInt64
	Weight           sql.NullFloat64
	DonationReason   sql.NullString
	ContactInfo      sql.NullString
	ExpiryDate       sql.NullString
	PickupAddress    sql.NullString
	Latitude         sql.NullFloat64
	Longitude        sql.NullFloat64
	Status           sql.NullInt64
	ReservedBy       uuid.NullUUID
	ReservedAt       sql.NullTime
	PickupTime       sql.NullString
	PickupPersonName sql.NullString
	CreatedAt        sql.NullTime
	CompletedAt      sql.NullTime
}

// donationColumns is the SELECT list matching donationRow's scan order.
const donationColumns = `
	id,
	donor_id,
	title,
	description,
	category,
	quantity,
	weight,
	donation_reason,
	contact_info,
	expiry_date,
	pickup_address,
	latitude,
	longitude,
	status,
	reserved_by,
	reserved_at,
	pickup_time,
	pickup_person_name,
	created_at,
	completed_at`

func (r *donationRow) scanTargets() []any {
	return []any{
		&r.ID,
		&r.DonorID,
		&r.Title,
		&r.Description,
		&r.Category,
		&r.Quantity,
		&r.Weight,
		&r.DonationReason,
		&r.ContactInfo,
		&r.ExpiryDate,
		&r.PickupAddress,
		&r.Latitude,
		&r.Longitude,
		&r.Status,
		&r.ReservedBy,
		&r.ReservedAt,
		&r.PickupTime,
		&r.PickupPersonName,
		&r.CreatedAt,
		&r.CompletedAt,
	}
}

// normalizeDonationRow converts a scanned row into a summary, reporting
// false for rows too broken to display: missing id, blank title or blank
// category. Everything else is repaired in place.
func normalizeDonationRow(row donationRow) (DonationSummary, bool) {
	if !row.ID.Valid || !row.DonorID.Valid {
		return DonationSummary{}, false
	}
	title := strings.TrimSpace(row.Title.String)
	category := strings.ToLower(strings.TrimSpace(row.Category.String))
	if title == "" || category == "" {
		return DonationSummary{}, false
	}

	id, err := kernel.UUIDFromBytes(row.ID.UUID[:])
	if err != nil {
		return DonationSummary{}, false
	}
	donorID, err := kernel.UUIDFromBytes(row.DonorID.UUID[:])
	if err != nil {
		return DonationSummary{}, false
	}

	quantity := int(row.Quantity.Int64)
	if quantity <= 0 {
		quantity = 1
	}

	summary := DonationSummary{
		ID:            id,
		DonorID:       donorID,
		Title:         title,
		Description:   strings.TrimSpace(row.Description.String),
		Category:      category,
		Quantity:      quantity,
		PickupAddress: strings.TrimSpace(row.PickupAddress.String),
		Location:      kernel.NormalizeGeoPoint(row.Latitude.Float64, row.Longitude.Float64),
		Status:        donation.Status(row.Status.Int64),
		CreatedAt:     row.CreatedAt.Time,
	}

	if row.Weight.Valid {
		weight := row.Weight.Float64
		summary.Weight = &weight
	}
	summary.DonationReason = optionalString(row.DonationReason)
	summary.ContactInfo = optionalString(row.ContactInfo)
	summary.ExpiryDate = optionalString(row.ExpiryDate)
	summary.PickupTime = optionalString(row.PickupTime)
	summary.PickupPersonName = optionalString(row.PickupPersonName)

	if row.ReservedBy.Valid {
		if reservedBy, rErr := kernel.UUIDFromBytes(row.ReservedBy.UUID[:]); rErr == nil {
			summary.ReservedBy = &reservedBy
		}
	}
	if row.ReservedAt.Valid {
		reservedAt := row.ReservedAt.Time
		summary.ReservedAt = &reservedAt
	}
	if row.CompletedAt.Valid {
		completedAt := row.CompletedAt.Time
		summary.CompletedAt = &completedAt
	}

	return summary, true
}

func optionalString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	trimmed := strings.TrimSpace(s.String)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
