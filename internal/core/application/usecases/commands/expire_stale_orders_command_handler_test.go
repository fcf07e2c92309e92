package commands_test

import (
	"testing"
	"time"

	"campusmarket/internal/core/application/usecases/commands"
	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/order"
	"campusmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type expireFixture struct {
	orderRepo *MockOrderRepository
	uow       *MockMarketUoW
	handler   commands.ExpireStaleOrdersCommandHandler
}

func newExpireFixture(t *testing.T) *expireFixture {
	t.Helper()
	f := &expireFixture{
		orderRepo: new(MockOrderRepository),
		uow:       new(MockMarketUoW),
	}

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(f.uow).Once()

	f.uow.On("Begin", mock.Anything).Return(nil).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.uow.On("OrderRepository").Return(f.orderRepo).Maybe()

	f.handler = commands.NewExpireStaleOrdersCommandHandler(factory)
	return f
}

func TestExpireStaleOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	f := newExpireFixture(t)

	cmd, err := commands.NewExpireStaleOrdersCommand(72 * time.Hour)
	require.NoError(t, err)

	first := makeOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)
	second := makeOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)

	f.orderRepo.On("GetPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	f.orderRepo.On("Update", mock.Anything, first).Return(nil).Once()
	f.orderRepo.On("Update", mock.Anything, second).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	expired, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, expired)
	require.Equal(t, order.Cancelled, first.Status())
	require.Equal(t, order.Cancelled, second.Status())

	f.orderRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestExpireStaleOrdersCommandHandler_Handle_NothingToExpire(t *testing.T) {
	ctx := t.Context()
	f := newExpireFixture(t)

	cmd, err := commands.NewExpireStaleOrdersCommand(72 * time.Hour)
	require.NoError(t, err)

	f.orderRepo.On("GetPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	expired, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Zero(t, expired)
	f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExpireStaleOrdersCommandHandler_Handle_UpdateConflictAbortsSweep(t *testing.T) {
	ctx := t.Context()
	f := newExpireFixture(t)

	cmd, err := commands.NewExpireStaleOrdersCommand(72 * time.Hour)
	require.NoError(t, err)

	stale := makeOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)

	f.orderRepo.On("GetPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{stale}, nil).Once()
	f.orderRepo.On("Update", mock.Anything, stale).
		Return(errs.NewVersionIsInvalidErrorWithCause("order")).Once()

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestExpireStaleOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewExpireStaleOrdersCommandHandler(factory)

	_, err := h.Handle(ctx, commands.ExpireStaleOrdersCommand{})

	require.Error(t, err)
}
