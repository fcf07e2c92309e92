package queries

import (
	"time"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/listing"
	"campusmarket/internal/core/domain/model/order"
)

// OrderSummary is the read model returned by the order history queries.
// It carries the order itself plus the counterpart student and a snapshot
// of the listing, so callers render a history page with a single round trip.
type OrderSummary struct {
	ID          kernel.UUID
	Status      order.Status
	TotalPrice  kernel.Price
	CreatedAt   time.Time
	Counterpart CounterpartSummary
	Listing     ListingSummary
}

// CounterpartSummary identifies the other party of an order. For a buyer's
// history the counterpart is the seller, for a seller's history the buyer.
type CounterpartSummary struct {
	ID    kernel.UUID
	Email string
}

// ListingSummary is the listing snapshot embedded in an order summary.
type ListingSummary struct {
	ID          kernel.UUID
	Price       kernel.Price
	Type        listing.ListingType
	IsAvailable bool
}
