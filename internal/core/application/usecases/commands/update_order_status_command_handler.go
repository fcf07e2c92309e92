package commands

import (
	"context"
	"errors"

	"campusmarket/internal/core/domain/model/order"
	"campusmarket/internal/core/domain/services"
	"campusmarket/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler orchestrates an order status change:
// state machine legality first, then the role policy, then persistence.
//
// When the new status is Completed, the listing is marked unavailable within
// the same transaction as the status write, so a completed order is never
// observable with its listing still on the market.
type UpdateOrderStatusCommandHandler struct {
	uowFactory MarketUoWFactory
	policy     *services.TransitionPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory MarketUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the status change command and returns the updated order.
//
// InvalidTransition and NotAuthorized failures propagate unchanged. A lost
// race against a concurrent update on the same order surfaces as
// errs.VersionIsInvalidError from the repository.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor, err := uow.StudentRepository().GetByUserID(ctx, cmd.ActingUserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotAParticipant
	}
	if err != nil {
		return nil, err
	}

	if err = o.Status().ValidateTransition(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeTransition(o, actor.ID(), cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if o.Status() == order.Completed {
		listingRepo := uow.ListingRepository()
		lst, listingErr := listingRepo.Get(ctx, o.ListingID())
		if listingErr != nil {
			return nil, listingErr
		}

		lst.MarkUnavailable()
		if listingErr = listingRepo.Update(ctx, lst); listingErr != nil {
			return nil, listingErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
