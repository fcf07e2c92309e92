package ports

import (
	"context"
	"time"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change on an existing order. The write is
	// conditional on the status the aggregate was loaded with; a lost race
	// against a concurrent update surfaces as errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByBuyerAndListing retrieves the buyer's orders against a
	// listing that are not in a terminal status (Rejected, Cancelled,
	// Completed). Used to reject duplicate active orders.
	GetActiveByBuyerAndListing(ctx context.Context, buyerID, listingID kernel.UUID) ([]*order.Order, error)

	// GetPendingCreatedBefore retrieves orders still in Pending status whose
	// creation time precedes the cutoff. Used by the stale-order sweep.
	GetPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
