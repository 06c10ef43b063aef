package services

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// QuerySvcFacade defines scoped invoice listing and search.
type QuerySvcFacade interface {
	ListInvoices(ctx context.Context, scope domain.Scope, filter domain.InvoiceFilter) ([]domain.InvoiceView, error)
	Search(ctx context.Context, scope domain.Scope, input domain.SearchInput) (*domain.SearchResult, error)
	ListDistinctStayYears(ctx context.Context, scope domain.Scope) ([]int, error)
}
