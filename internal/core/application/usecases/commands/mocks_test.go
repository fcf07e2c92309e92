package commands_test

import (
	"context"
	"testing"
	"time"

	"campusmarket/internal/core/application/usecases/commands"
	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/listing"
	"campusmarket/internal/core/domain/model/order"
	"campusmarket/internal/core/domain/model/student"
	"campusmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByBuyerAndListing(
	ctx context.Context, buyerID, listingID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, buyerID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPendingCreatedBefore(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockStudentRepository struct{ mock.Mock }

func (m *MockStudentRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*student.Student, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*student.Student), args.Error(1)
}

type MockMarketUoW struct{ mock.Mock }

func (m *MockMarketUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockMarketUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockMarketUoW) StudentRepository() ports.StudentRepository {
	args := m.Called()
	return args.Get(0).(ports.StudentRepository)
}

type MockMarketUoWFactory struct{ mock.Mock }

func (m *MockMarketUoWFactory) Create() commands.MarketUoW {
	args := m.Called()
	return args.Get(0).(commands.MarketUoW)
}

type MockTradeUoWFactory struct{ mock.Mock }

func (m *MockTradeUoWFactory) Create() commands.TradeUoW {
	args := m.Called()
	return args.Get(0).(commands.TradeUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// Test fixtures shared across handler tests.

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return price
}

func makeStudent(t *testing.T, userID kernel.UUID, isActive bool) *student.Student {
	t.Helper()
	s, err := student.RestoreStudent(kernel.NewUUID(), userID, "student@campus.edu", isActive)
	require.NoError(t, err)
	return s
}

func makeListing(
	t *testing.T, ownerID kernel.UUID, listingType listing.ListingType, isAvailable bool,
) *listing.Listing {
	t.Helper()
	l, err := listing.RestoreListing(kernel.NewUUID(), ownerID, mustPrice(t, 10000), listingType, isAvailable)
	require.NoError(t, err)
	return l
}

func makeOrder(t *testing.T, buyerID, sellerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), buyerID, sellerID,
		order.TypeSell, status, mustPrice(t, 10000))
	require.NoError(t, err)
	return o
}
