// Package listingrepo persists the listing aggregate.
package listingrepo

import (
	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO is the database row for a listing aggregate.
type ListingDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	Price       int64
	ListingType int
	IsAvailable bool
}

// TableName overrides GORM's default naming to use "listings".
func (ListingDTO) TableName() string {
	return "listings"
}

func fromDomain(l *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:          l.ID().Bytes(),
		OwnerID:     l.OwnerID().Bytes(),
		Price:       l.Price().Amount(),
		ListingType: int(l.Type()),
		IsAvailable: l.IsAvailable(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(id, ownerID, price, listing.ListingType(dto.ListingType), dto.IsAvailable)
}
