// Package orderrepo persists the order aggregate. It maps between the
// domain model and the relational representation and enforces the
// optimistic concurrency check on status updates.
package orderrepo

import (
	"time"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. CreatedAt feeds the
// history ordering and the stale-order sweep; both timestamps are managed
// by GORM.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID  uuid.UUID `gorm:"type:uuid;index"`
	BuyerID    uuid.UUID `gorm:"type:uuid;index"`
	SellerID   uuid.UUID `gorm:"type:uuid;index"`
	OrderType  int
	Status     int `gorm:"index"`
	TotalPrice int64
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Bytes(),
		ListingID:  o.ListingID().Bytes(),
		BuyerID:    o.BuyerID().Bytes(),
		SellerID:   o.SellerID().Bytes(),
		OrderType:  int(o.Type()),
		Status:     int(o.Status()),
		TotalPrice: o.TotalPrice().Amount(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, listingID, buyerID, sellerID,
		order.OrderType(dto.OrderType), order.Status(dto.Status), totalPrice,
	)
}
