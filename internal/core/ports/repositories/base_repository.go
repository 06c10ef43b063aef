package repositories

import (
	"context"
)

// TransactionManager runs a unit of work in one database transaction.
// Repository calls made with the ctx passed to fn join that transaction.
// Returning an error from fn rolls everything back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
