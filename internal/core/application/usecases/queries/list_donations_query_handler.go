package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListDonationsQueryHandler retrieves the public donation listing from the
// database. Rows are normalized on the way out so that historical records
// with missing or broken optional fields still render.
//
// Example:
//
//	handler := NewListDonationsQueryHandler(db)
//	query, err := NewListDonationsQuery("available", "produce", "")
//	if err != nil {
//	    return err
//	}
//
//	donations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list donations: %v", err)
//	    return err
//	}
type ListDonationsQueryHandler struct {
	db *gorm.DB
}

// NewListDonationsQueryHandler creates a handler for donation listing queries.
// Requires a GORM database connection for query execution.
func NewListDonationsQueryHandler(db *gorm.DB) ListDonationsQueryHandler {
	return ListDonationsQueryHandler{db: db}
}

// Handle executes the listing query. Results are newest first and capped at
// ListLimit. Rows missing an id, title or category are dropped rather than
// reported as errors.
func (h ListDonationsQueryHandler) Handle(
	ctx context.Context,
	query ListDonationsQuery,
) ([]DonationSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*status))
	}
	if category := query.Category(); category != "" {
		conditions = append(conditions, "LOWER(category) = ?")
		args = append(args, category)
	}
	if reservedBy := query.ReservedBy(); reservedBy != nil {
		conditions = append(conditions, "reserved_by = ?")
		args = append(args, reservedBy.Bytes())
	}

	sql := "SELECT " + donationColumns + " FROM donations"
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, ListLimit)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	donations := make([]DonationSummary, 0)
	for rows.Next() {
		var row donationRow
		if err = rows.Scan(row.scanTargets()...); err != nil {
			return nil, err
		}

		summary, ok := normalizeDonationRow(row)
		if !ok {
			continue
		}
		donations = append(donations, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
