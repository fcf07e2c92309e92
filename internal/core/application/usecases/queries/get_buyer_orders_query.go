package queries

import (
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/pkg/guard"
)

var (
	ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
		"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
	)

	// ErrNotAParticipant is returned when the acting user has no student
	// profile and therefore cannot have an order history.
	ErrNotAParticipant = errors.New("acting user has no student profile")
)

// GetBuyerOrdersQuery retrieves the purchase history of a student, newest
// orders first. Orders in every status are included, terminal ones too.
type GetBuyerOrdersQuery struct {
	buyerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for the purchase history of the
// student backed by the given user account.
func NewGetBuyerOrdersQuery(buyerUserID kernel.UUID) (GetBuyerOrdersQuery, error) {
	if err := buyerUserID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return GetBuyerOrdersQuery{
		buyerUserID: buyerUserID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerUserID returns the user account identifier of the buyer.
func (q GetBuyerOrdersQuery) BuyerUserID() kernel.UUID {
	return q.buyerUserID
}
