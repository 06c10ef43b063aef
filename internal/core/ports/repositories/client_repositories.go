package repositories

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// ClientReader defines read operations for clients. Every lookup is bounded by arID.
type ClientReader interface {
	FindClientByID(ctx context.Context, arID, clientID int64) (*domain.Client, error)
	// ListClients orders by name; nameContains is a case-insensitive filter when non-empty.
	ListClients(ctx context.Context, arID int64, nameContains string) ([]domain.Client, error)
	// ListCompanies returns distinct non-blank client companies, ordered.
	ListCompanies(ctx context.Context, arID int64) ([]string, error)
}

// ClientWriter defines write operations for clients.
type ClientWriter interface {
	// SaveClient inserts the client and sets ClientID and CreatedAt.
	// A duplicate name within the entity yields apperrors.ErrDuplicate.
	SaveClient(ctx context.Context, client *domain.Client) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
