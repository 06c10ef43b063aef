package pgsql

import (
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    newPgxTransactionManager(pool),
		AREntityRepo: newPgxAREntityRepository(pool),
		UserRepo:     newPgxUserRepository(pool),
		ClientRepo:   newPgxClientRepository(pool),
		InvoiceRepo:  newPgxInvoiceRepository(pool),
		PaymentRepo:  newPgxPaymentRepository(pool),
	}
}
