// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodshare/internal/core/ports"
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

	// DonationRepoFactory provides access to donation repository within a transaction.
	DonationRepoFactory interface {
		DonationRepository() ports.DonationRepository
	}

	// DonationUoW manages transactions for donation operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.DonationRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DonationUoW interface {
		TxManager
		DonationRepoFactory
	}

	// DonationUoWFactory creates new donation unit of work instances.
	DonationUoWFactory interface {
		Create() DonationUoW
	}
)
