// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"campusmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// StudentRepoFactory provides access to the student repository within a transaction.
	StudentRepoFactory interface {
		StudentRepository() ports.StudentRepository
	}

	// OrderUoW manages transactions for order-only operations, such as the
	// stale-order sweep.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TradeUoW manages transactions for operations that touch an order and
	// the identity of the student driving it, such as cancellation.
	TradeUoW interface {
		TxManager
		OrderRepoFactory
		StudentRepoFactory
	}

	// TradeUoWFactory creates new trade unit of work instances.
	TradeUoWFactory interface {
		Create() TradeUoW
	}

	// MarketUoW manages transactions across orders, listings, and students.
	// Used by order creation and status updates, where the order write and
	// the listing availability side effect must commit together.
	MarketUoW interface {
		TxManager
		OrderRepoFactory
		ListingRepoFactory
		StudentRepoFactory
	}

	// MarketUoWFactory creates new market unit of work instances.
	MarketUoWFactory interface {
		Create() MarketUoW
	}
)
