package services

import (
	"context"
	"errors"
	"strings"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/stay"
)

type queryService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
}

func NewQueryService(invoiceRepo portsrepo.InvoiceReader) portssvc.QuerySvcFacade {
	return &queryService{invoiceRepo: invoiceRepo}
}

var _ portssvc.QuerySvcFacade = (*queryService)(nil)

func stayWindow(year, month *int) (*stay.Window, error) {
	w, err := stay.WindowFor(year, month)
	if err != nil {
		if errors.Is(err, stay.ErrInvalidArgument) {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		return nil, err
	}
	return w, nil
}

func (s *queryService) ListInvoices(ctx context.Context, scope domain.Scope, filter domain.InvoiceFilter) ([]domain.InvoiceView, error) {
	window, err := stayWindow(filter.Year, filter.Month)
	if err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListInvoiceViews(ctx, portsrepo.InvoiceQuery{
		ARID:               scope.ARID,
		Outstanding:        filter.Outstanding,
		ClientID:           filter.ClientID,
		ClientNameContains: strings.TrimSpace(filter.ClientNameContains),
		Company:            optionalText(filter.Company),
		Window:             window,
		IncludeVoid:        filter.IncludeVoid,
		AfterID:            filter.AfterID,
		Limit:              filter.Limit,
	})
}

func (s *queryService) Search(ctx context.Context, scope domain.Scope, input domain.SearchInput) (*domain.SearchResult, error) {
	window, err := stayWindow(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	q := strings.TrimSpace(input.Query)

	if q != "" {
		id, err := s.invoiceRepo.FindInvoiceIDByNumber(ctx, scope.ARID, q)
		switch {
		case err == nil:
			view, err := s.invoiceRepo.FindInvoiceView(ctx, scope.ARID, id)
			if err != nil {
				return nil, err
			}
			return &domain.SearchResult{ExactMatchID: &id, Invoices: []domain.InvoiceView{*view}}, nil
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		}
	}

	views, err := s.invoiceRepo.ListInvoiceViews(ctx, portsrepo.InvoiceQuery{
		ARID:        scope.ARID,
		Text:        q,
		Company:     optionalText(input.Company),
		Window:      window,
		IncludeVoid: true,
	})
	if err != nil {
		return nil, err
	}
	return &domain.SearchResult{Invoices: views}, nil
}

func (s *queryService) ListDistinctStayYears(ctx context.Context, scope domain.Scope) ([]int, error) {
	return s.invoiceRepo.ListStayYears(ctx, scope.ARID)
}
