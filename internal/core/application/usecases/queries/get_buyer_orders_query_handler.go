package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/listing"
	"campusmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads a student's purchase history straight from
// the database, bypassing the aggregates. Each row joins the seller and the
// listing so the response is complete without further lookups.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for purchase history queries.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle returns all orders where the acting user is the buyer, newest first.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	studentID, err := resolveStudentID(ctx, h.db, query.BuyerUserID())
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
		JOIN students s ON s.id = o.seller_id
		JOIN listings l ON l.id = o.listing_id
		WHERE o.buyer_id = ?
		ORDER BY o.created_at DESC
	`, studentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// resolveStudentID maps a user account to its student profile.
// Returns ErrNotAParticipant when no profile exists.
func resolveStudentID(ctx context.Context, db *gorm.DB, userID kernel.UUID) (kernel.UUID, error) {
	var id uuid.UUID
	err := db.WithContext(ctx).Raw(
		`SELECT id FROM students WHERE user_id = ?`, userID.Bytes(),
	).Row().Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return kernel.UUID{}, ErrNotAParticipant
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(id[:])
}

// scanOrderSummaries maps joined order rows to the read model. The column
// order must match the SELECT lists of both history queries.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var (
			orderID        uuid.UUID
			status         int
			totalPrice     int64
			createdAt      time.Time
			counterpartID  uuid.UUID
			email          string
			listingID      uuid.UUID
			listingPrice   int64
			listingType    int
			listingForSale bool
		)

		err := rows.Scan(
			&orderID,
			&status,
			&totalPrice,
			&createdAt,
			&counterpartID,
			&email,
			&listingID,
			&listingPrice,
			&listingType,
			&listingForSale,
		)
		if err != nil {
			return nil, err
		}

		summary, err := buildOrderSummary(
			orderID, status, totalPrice, createdAt,
			counterpartID, email,
			listingID, listingPrice, listingType, listingForSale,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func buildOrderSummary(
	orderID uuid.UUID, status int, totalPrice int64, createdAt time.Time,
	counterpartID uuid.UUID, email string,
	listingID uuid.UUID, listingPrice int64, listingType int, isAvailable bool,
) (OrderSummary, error) {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	price, err := kernel.NewPrice(totalPrice)
	if err != nil {
		return OrderSummary{}, err
	}

	cID, err := kernel.UUIDFromBytes(counterpartID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	lID, err := kernel.UUIDFromBytes(listingID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	lPrice, err := kernel.NewPrice(listingPrice)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:         id,
		Status:     order.Status(status),
		TotalPrice: price,
		CreatedAt:  createdAt,
		Counterpart: CounterpartSummary{
			ID:    cID,
			Email: email,
		},
		Listing: ListingSummary{
			ID:          lID,
			Price:       lPrice,
			Type:        listing.ListingType(listingType),
			IsAvailable: isAvailable,
		},
	}, nil
}
