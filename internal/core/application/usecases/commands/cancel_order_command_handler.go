package commands

import (
	"context"
	"errors"

	"campusmarket/internal/core/domain/model/order"
	"campusmarket/internal/core/domain/services"
	"campusmarket/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the cancel shortcut: any pre-paid order
// may be cancelled by either party. Cancellation never touches the listing;
// it keeps whatever availability it already had.
type CancelOrderCommandHandler struct {
	uowFactory TradeUoWFactory
	policy     *services.TransitionPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory TradeUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the cancellation command and returns the cancelled order.
// CancellationNotAllowed and NotAuthorized failures propagate unchanged.
func (h CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
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

	if err = o.Status().ValidateCancellation(); err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeCancellation(o, actor.ID()); err != nil {
		return nil, err
	}

	if err = o.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
