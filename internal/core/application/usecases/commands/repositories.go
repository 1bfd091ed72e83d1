// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"eventsupply/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends on the narrowest repository combination it needs.
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

	// CredentialRepoFactory provides access to the credential repository within a transaction.
	CredentialRepoFactory interface {
		CredentialRepository() ports.CredentialRepository
	}

	// InventoryLedgerFactory provides access to the inventory ledger within a transaction.
	InventoryLedgerFactory interface {
		InventoryLedger() ports.InventoryLedger
	}

	// EvidenceRepoFactory provides access to the evidence repository within a transaction.
	EvidenceRepoFactory interface {
		EvidenceRepository() ports.EvidenceRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (preparation progress, assignment, cancellation, returns).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CredentialUoW manages transactions for credential-only operations
	// (issuance, resend, login verification, expiry sweep).
	CredentialUoW interface {
		TxManager
		CredentialRepoFactory
	}

	// CredentialUoWFactory creates new credential unit of work instances.
	CredentialUoWFactory interface {
		Create() CredentialUoW
	}

	// GatedTransitionUoW manages transactions for credential-gated order
	// transitions, which touch the order, the credential claim, and the
	// confirmation record in one atomic step.
	GatedTransitionUoW interface {
		TxManager
		OrderRepoFactory
		CredentialRepoFactory
		EvidenceRepoFactory
	}

	// GatedTransitionUoWFactory creates new gated transition unit of work instances.
	GatedTransitionUoWFactory interface {
		Create() GatedTransitionUoW
	}

	// DispatchUoW manages transactions for dispatch, which commits the status
	// change and the inventory deduction as one unit.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		InventoryLedgerFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// EvidenceUoW manages transactions for evidence capture against an order.
	EvidenceUoW interface {
		TxManager
		OrderRepoFactory
		EvidenceRepoFactory
	}

	// EvidenceUoWFactory creates new evidence unit of work instances.
	EvidenceUoWFactory interface {
		Create() EvidenceUoW
	}
)
