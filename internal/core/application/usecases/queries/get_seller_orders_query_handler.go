package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler reads a student's sales history straight from
// the database. The counterpart in each row is the buyer.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a handler for sales history queries.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle returns all orders where the acting user is the seller, newest first.
func (h GetSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	studentID, err := resolveStudentID(ctx, h.db, query.SellerUserID())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total_price,
			o.created_at,
			s.id,
			s.email,
			l.id,
			l.price,
			l.listing_type,
			l.is_available
		FROM orders o
		JOIN students s ON s.id = o.buyer_id
		JOIN listings l ON l.id = o.listing_id
		WHERE o.seller_id = ?
		ORDER BY o.created_at DESC
	`, studentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
