package commands

import (
	"context"
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/order"
	"campusmarket/internal/pkg/errs"
)

// CreateSellOrderCommandHandler handles the business logic for placing a sell
// order. Preconditions are checked in a fixed sequence, each failing fast
// with a distinct error: participant resolution, account activity, listing
// existence, availability, listing type, self-trade, duplicate active order.
//
// On success the order is persisted in Pending status with the total price
// snapshotted from the listing and the seller copied from the listing owner.
type CreateSellOrderCommandHandler struct {
	uowFactory MarketUoWFactory
}

// NewCreateSellOrderCommandHandler creates a handler for order creation.
// Requires a MarketUoWFactory for transactional persistence.
func NewCreateSellOrderCommandHandler(uowFactory MarketUoWFactory) CreateSellOrderCommandHandler {
	return CreateSellOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
func (h CreateSellOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSellOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.StudentRepository().GetByUserID(ctx, cmd.BuyerUserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotAParticipant
	}
	if err != nil {
		return nil, err
	}
	if !buyer.IsActive() {
		return nil, ErrInactiveAccount
	}

	lst, err := uow.ListingRepository().Get(ctx, cmd.ListingID())
	if err != nil {
		return nil, err
	}
	if !lst.IsAvailable() {
		return nil, ErrListingUnavailable
	}
	if !lst.Type().SupportsSale() {
		return nil, ErrWrongListingType
	}
	if lst.IsOwnedBy(buyer.ID()) {
		return nil, ErrSelfTrade
	}

	orderRepo := uow.OrderRepository()
	active, err := orderRepo.GetActiveByBuyerAndListing(ctx, buyer.ID(), lst.ID())
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, ErrDuplicateActiveOrder
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), lst.ID(), buyer.ID(), lst.OwnerID(), lst.Price())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
