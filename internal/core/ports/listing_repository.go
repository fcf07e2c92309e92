package ports

import (
	"context"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
// Listing creation and search live outside this core; the order workflow only
// reads listings and flips their availability.
type ListingRepository interface {
	// Get retrieves a listing aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// Update persists changes to an existing listing aggregate.
	Update(ctx context.Context, aggregate *listing.Listing) error
}
