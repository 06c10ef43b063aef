package services

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// ClientSvcFacade defines client operations within a scope.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, scope domain.Scope, input domain.CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, scope domain.Scope, clientID int64) (*domain.Client, error)
	ListClients(ctx context.Context, scope domain.Scope, nameContains string) ([]domain.Client, error)
	ListCompanies(ctx context.Context, scope domain.Scope) ([]string, error)
}
