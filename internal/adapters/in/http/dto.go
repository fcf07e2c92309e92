package http

import (
	"time"

	"campusmarket/internal/core/application/usecases/queries"
	"campusmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ListingID uuid.UUID `json:"listingId"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/{orderId}/status.
// Status carries the wire name, e.g. "PAYMENT_PENDING".
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the representation of an order returned by the command
// endpoints.
type OrderResponse struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"listingId"`
	BuyerID    uuid.UUID `json:"buyerId"`
	SellerID   uuid.UUID `json:"sellerId"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"totalPrice"`
}

// OrderSummaryResponse is one entry of a purchase or sales history.
type OrderSummaryResponse struct {
	ID          uuid.UUID           `json:"id"`
	Status      string              `json:"status"`
	TotalPrice  int64               `json:"totalPrice"`
	CreatedAt   time.Time           `json:"createdAt"`
	Counterpart CounterpartResponse `json:"counterpart"`
	Listing     ListingResponse     `json:"listing"`
}

// CounterpartResponse identifies the other party of an order.
type CounterpartResponse struct {
	ID    uuid.UUID          `json:"id"`
	Email openapitypes.Email `json:"email"`
}

// ListingResponse is the listing snapshot embedded in a history entry.
type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	Price       int64     `json:"price"`
	Type        string    `json:"type"`
	IsAvailable bool      `json:"isAvailable"`
}

// ErrorResponse is the error body shared by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderToResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID().Bytes(),
		ListingID:  o.ListingID().Bytes(),
		BuyerID:    o.BuyerID().Bytes(),
		SellerID:   o.SellerID().Bytes(),
		Status:     o.Status().String(),
		TotalPrice: o.TotalPrice().Amount(),
	}
}

func summariesToResponse(summaries []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = OrderSummaryResponse{
			ID:         s.ID.Bytes(),
			Status:     s.Status.String(),
			TotalPrice: s.TotalPrice.Amount(),
			CreatedAt:  s.CreatedAt,
			Counterpart: CounterpartResponse{
				ID:    s.Counterpart.ID.Bytes(),
				Email: openapitypes.Email(s.Counterpart.Email),
			},
			Listing: ListingResponse{
				ID:          s.Listing.ID.Bytes(),
				Price:       s.Listing.Price.Amount(),
				Type:        s.Listing.Type.String(),
				IsAvailable: s.Listing.IsAvailable,
			},
		}
	}

	return response
}
