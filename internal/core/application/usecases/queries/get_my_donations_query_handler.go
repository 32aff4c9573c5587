package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyDonationsQueryHandler retrieves the personal donation history of one
// actor from the database: everything they donated and everything they
// reserved, with each row labeled by the side they stood on.
type GetMyDonationsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDonationsQueryHandler creates a handler for personal history
// queries. Requires a GORM database connection for query execution.
func NewGetMyDonationsQueryHandler(db *gorm.DB) GetMyDonationsQueryHandler {
	return GetMyDonationsQueryHandler{db: db}
}

// Handle executes the history query. Results are newest first; a donation
// the actor both gave and reserved appears once, labeled as given.
func (h GetMyDonationsQueryHandler) Handle(
	ctx context.Context,
	query GetMyDonationsQuery,
) ([]MyDonation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actorID := query.ActorID().Bytes()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+donationColumns+`
		FROM donations
		WHERE donor_id = ? OR reserved_by = ?
		ORDER BY created_at DESC
	`, actorID, actorID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]MyDonation, 0)
	for rows.Next() {
		var row donationRow
		if err = rows.Scan(row.scanTargets()...); err != nil {
			return nil, err
		}

		summary, ok := normalizeDonationRow(row)
		if !ok {
			continue
		}

		role := DonationRoleReceived
		if summary.DonorID.IsEqual(query.ActorID()) {
			role = DonationRoleGiven
		}
		history = append(history, MyDonation{DonationSummary: summary, Role: role})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
