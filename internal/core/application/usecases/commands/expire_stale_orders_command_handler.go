package commands

import (
	"context"
	"time"
)

// ExpireStaleOrdersCommandHandler cancels Pending orders older than the
// configured age. It goes through the same cancellation validation as the
// user-facing path, so it can never expire an order the state machine
// considers non-cancellable.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels all stale Pending orders and returns how many were expired.
func (h ExpireStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireStaleOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().Add(-cmd.MaxAge())

	stale, err := orderRepo.GetPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, o := range stale {
		if err = o.Cancel(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
