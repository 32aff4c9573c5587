package http

import (
	"time"

	"foodshare/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error payload returned by every failing
// endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DonationPayload carries the descriptive fields of a donation being
// published.
type DonationPayload struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Quantity       int      `json:"quantity"`
	Weight         *float64 `json:"weight,omitempty"`
	DonationReason *string  `json:"donationReason,omitempty"`
	ContactInfo    *string  `json:"contactInfo,omitempty"`
	ExpiryDate     *string  `json:"expiryDate,omitempty"`
	PickupAddress  string   `json:"pickupAddress"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
}

// CreateDonationResponse returns the identifier assigned to a published
// donation together with its normalized pickup coordinates.
type CreateDonationResponse struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateDonationBatchRequest publishes up to a fixed number of donations in
// one transaction.
type CreateDonationBatchRequest struct {
	Donations []DonationPayload `json:"donations"`
}

// CreateDonationBatchResponse returns the identifiers assigned to a
// published batch, in request order.
type CreateDonationBatchResponse struct {
	IDs []string `json:"ids"`
}

// ReserveDonationRequest carries the pickup logistics an organization
// supplies when reserving.
type ReserveDonationRequest struct {
	PickupTime       string `json:"pickupTime"`
	PickupPersonName string `json:"pickupPersonName"`
	PickupPersonID   string `json:"pickupPersonId"`
}

// ReserveDonationResponse returns the reservation outcome, including the
// verification code the collecting person must present.
type ReserveDonationResponse struct {
	VerificationCode string    `json:"verificationCode"`
	ReservedAt       time.Time `json:"reservedAt"`
	PickupTime       string    `json:"pickupTime"`
	PickupPersonName string    `json:"pickupPersonName"`
}

// BusinessDecisionRequest carries the donor's accept or reject decision on a
// pending pickup. Accept is a pointer so that an absent field is
// distinguishable from an explicit rejection.
type BusinessDecisionRequest struct {
	Accept *bool `json:"accept"`
}

// ConfirmPickupRequest carries one party's handoff confirmation.
type ConfirmPickupRequest struct {
	VerificationCode string `json:"verificationCode"`
}

// ConfirmPickupResponse reports whether the confirmation completed the
// donation or registered one side of the handoff.
type ConfirmPickupResponse struct {
	Completed bool   `json:"completed"`
	Message   string `json:"message"`
}

// DonationResponse is the listing representation of one donation.
type DonationResponse struct {
	ID               string     `json:"id"`
	DonorID          string     `json:"donorId"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Quantity         int        `json:"quantity"`
	Weight           *float64   `json:"weight,omitempty"`
	DonationReason   *string    `json:"donationReason,omitempty"`
	ContactInfo      *string    `json:"contactInfo,omitempty"`
	ExpiryDate       *string    `json:"expiryDate,omitempty"`
	PickupAddress    string     `json:"pickupAddress"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	Status           string     `json:"status"`
	ReservedBy       *string    `json:"reservedBy,omitempty"`
	ReservedAt       *time.Time `json:"reservedAt,omitempty"`
	PickupTime       *string    `json:"pickupTime,omitempty"`
	PickupPersonName *string    `json:"pickupPersonName,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// MyDonationResponse is a history entry: the donation plus the side the
// requesting actor stood on.
type MyDonationResponse struct {
	DonationResponse
	Role string `json:"role"`
}

// StatsResponse returns the per-actor dashboard totals.
type StatsResponse struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Completed   int `json:"completed"`
	ImpactScore int `json:"impactScore"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

func toDonationResponse(summary queries.DonationSummary) DonationResponse {
	resp := DonationResponse{
		ID:               summary.ID.String(),
		DonorID:          summary.DonorID.String(),
		Title:            summary.Title,
		Description:      summary.Description,
		Category:         summary.Category,
		Quantity:         summary.Quantity,
		Weight:           summary.Weight,
		DonationReason:   summary.DonationReason,
		ContactInfo:      summary.ContactInfo,
		ExpiryDate:       summary.ExpiryDate,
		PickupAddress:    summary.PickupAddress,
		Latitude:         summary.Location.Latitude(),
		Longitude:        summary.Location.Longitude(),
		Status:           summary.Status.String(),
		ReservedAt:       summary.ReservedAt,
		PickupTime:       summary.PickupTime,
		PickupPersonName: summary.PickupPersonName,
		CreatedAt:        summary.CreatedAt,
		CompletedAt:      summary.CompletedAt,
	}
	if summary.ReservedBy != nil {
		reservedBy := summary.ReservedBy.String()
		resp.ReservedBy = &reservedBy
	}
	return resp
}
