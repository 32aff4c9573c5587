package queries

import (
	"context"

	"foodshare/internal/core/domain/model/donation"

	"gorm.io/gorm"
)

// GetDonationStatsQueryHandler computes per-actor donation totals in the
// database. The scope column depends on the actor's role: donors count the
// donations they published, organizations count the donations they reserved.
type GetDonationStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDonationStatsQueryHandler creates a handler for per-actor stats
// queries. Requires a GORM database connection for query execution.
func NewGetDonationStatsQueryHandler(db *gorm.DB) GetDonationStatsQueryHandler {
	return GetDonationStatsQueryHandler{db: db}
}

// Handle executes the stats query. Active counts both available and reserved
// donations; the impact score is the completed count scaled by
// ImpactPerCompletedDonation.
func (h GetDonationStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDonationStatsQuery,
) (DonationStats, error) {
	if err := query.Validate(); err != nil {
		return DonationStats{}, err
	}

	scopeColumn := "donor_id"
	if query.Actor().IsOrganization() {
		scopeColumn = "reserved_by"
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status != ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM donations
		WHERE `+scopeColumn+` = ?
	`, int(donation.StatusCompleted), int(donation.StatusCompleted), query.ActorID().Bytes()).Row()

	var stats DonationStats
	if err := row.Scan(&stats.Total, &stats.Active, &stats.Completed); err != nil {
		return DonationStats{}, err
	}
	stats.ImpactScore = stats.Completed * ImpactPerCompletedDonation

	return stats, nil
}
