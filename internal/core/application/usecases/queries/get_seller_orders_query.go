package queries

import (
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/pkg/guard"
)

var (
	ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
		"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
	)
)

// GetSellerOrdersQuery retrieves the sales history of a student, newest
// orders first.
type GetSellerOrdersQuery struct {
	sellerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for the sales history of the
// student backed by the given user account.
func NewGetSellerOrdersQuery(sellerUserID kernel.UUID) (GetSellerOrdersQuery, error) {
	if err := sellerUserID.Validate(); err != nil {
		return GetSellerOrdersQuery{}, err
	}

	return GetSellerOrdersQuery{
		sellerUserID: sellerUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// SellerUserID returns the user account identifier of the seller.
func (q GetSellerOrdersQuery) SellerUserID() kernel.UUID {
	return q.sellerUserID
}
