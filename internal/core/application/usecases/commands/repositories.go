// Package commands contains the lifecycle operations that modify orders, job
// assignments, files, and invoices. Implements the Command pattern for write
// operations in the CQRS architecture. All commands follow a consistent
// pattern: validation, authorization, transaction management, persistence,
// and post-commit side effects.
package commands

import (
	"context"

	"transcription/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest shape that covers the repositories it
// touches.
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

	// JobRepoFactory provides access to the job assignment repository within a transaction.
	JobRepoFactory interface {
		JobAssignmentRepository() ports.JobAssignmentRepository
	}

	// FileRepoFactory provides access to the file repository within a transaction.
	FileRepoFactory interface {
		FileRepository() ports.FileRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderJobUoW manages transactions that move an order and its job
	// assignments together. The atomicity of the pair is the core contract
	// of the assignment/rejection commands.
	OrderJobUoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
	}

	// OrderJobUoWFactory creates new order+job unit of work instances.
	OrderJobUoWFactory interface {
		Create() OrderJobUoW
	}

	// CreateOrderUoW manages the order creation transaction, which reads the
	// file record to verify it is orderable.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		FileRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// DeliverOrderUoW manages the delivery transaction: the order moves to
	// Delivered and the invoice row is written atomically. The file record
	// supplies the duration the invoice amount is computed from.
	DeliverOrderUoW interface {
		TxManager
		OrderRepoFactory
		FileRepoFactory
		InvoiceRepoFactory
	}

	// DeliverOrderUoWFactory creates new delivery unit of work instances.
	DeliverOrderUoWFactory interface {
		Create() DeliverOrderUoW
	}
)
