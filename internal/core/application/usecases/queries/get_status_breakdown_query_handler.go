package queries

import (
	"context"

	"foodshare/internal/core/domain/model/donation"

	"gorm.io/gorm"
)

// GetStatusBreakdownQueryHandler counts donations per lifecycle state.
type GetStatusBreakdownQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusBreakdownQueryHandler creates a handler for global breakdown
// queries. Requires a GORM database connection for query execution.
func NewGetStatusBreakdownQueryHandler(db *gorm.DB) GetStatusBreakdownQueryHandler {
	return GetStatusBreakdownQueryHandler{db: db}
}

// Handle executes the breakdown query. States outside the known lifecycle
// are ignored.
func (h GetStatusBreakdownQueryHandler) Handle(
	ctx context.Context,
	query GetStatusBreakdownQuery,
) (StatusBreakdown, error) {
	if err := query.Validate(); err != nil {
		return StatusBreakdown{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM donations
		GROUP BY status
	`).Rows()
	if err != nil {
		return StatusBreakdown{}, err
	}
	defer rows.Close()

	var breakdown StatusBreakdown
	for rows.Next() {
		var status int
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return StatusBreakdown{}, err
		}

		switch donation.Status(status) {
		case donation.StatusAvailable:
			breakdown.Available = count
		case donation.StatusReserved:
			breakdown.Reserved = count
		case donation.StatusCompleted:
			breakdown.Completed = count
		}
	}

	if err = rows.Err(); err != nil {
		return StatusBreakdown{}, err
	}

	return breakdown, nil
}
