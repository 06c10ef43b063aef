package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/ar_payment_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestQueryService_ListInvoicesBuildsStayWindow(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := services.NewQueryService(repo)
	company := " Acme "

	repo.On("ListInvoiceViews", mock.Anything, mock.MatchedBy(func(q portsrepo.InvoiceQuery) bool {
		return q.ARID == testScope.ARID &&
			q.Outstanding &&
			!q.IncludeVoid &&
			q.ClientNameContains == "smith" &&
			q.Company != nil && *q.Company == "Acme" &&
			q.Window != nil &&
			q.Window.Start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) &&
			q.Window.End.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.InvoiceView{}, nil).Once()

	_, err := svc.ListInvoices(context.Background(), testScope, domain.InvoiceFilter{
		Outstanding:        true,
		ClientNameContains: " smith ",
		Company:            &company,
		Year:               intPtr(2024),
		Month:              intPtr(2),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestQueryService_MonthWithoutYear(t *testing.T) {
	svc := services.NewQueryService(new(MockInvoiceRepository))

	_, err := svc.ListInvoices(context.Background(), testScope, domain.InvoiceFilter{Month: intPtr(3)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ListInvoices(context.Background(), testScope, domain.InvoiceFilter{Year: intPtr(2024), Month: intPtr(13)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestQueryService_SearchExactNumber(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := services.NewQueryService(repo)
	view := &domain.InvoiceView{Invoice: *openInvoice(8, testScope.ARID, "120")}

	repo.On("FindInvoiceIDByNumber", mock.Anything, testScope.ARID, "INV-8").Return(int64(8), nil).Once()
	repo.On("FindInvoiceView", mock.Anything, testScope.ARID, int64(8)).Return(view, nil).Once()

	res, err := svc.Search(context.Background(), testScope, domain.SearchInput{Query: " INV-8 "})
	require.NoError(t, err)
	require.NotNil(t, res.ExactMatchID)
	assert.Equal(t, int64(8), *res.ExactMatchID)
	assert.Len(t, res.Invoices, 1)
	repo.AssertExpectations(t)
}

func TestQueryService_SearchSubstringIncludesVoid(t *testing.T) {
	repo := new(MockInvoiceRepository)
	svc := services.NewQueryService(repo)

	repo.On("FindInvoiceIDByNumber", mock.Anything, testScope.ARID, "smi").
		Return(int64(0), apperrors.NewNotFoundError("invoice not found")).Once()
	repo.On("ListInvoiceViews", mock.Anything, mock.MatchedBy(func(q portsrepo.InvoiceQuery) bool {
		return q.Text == "smi" && q.IncludeVoid && q.Window != nil
	})).Return([]domain.InvoiceView{{}, {}}, nil).Once()

	res, err := svc.Search(context.Background(), testScope, domain.SearchInput{Query: "smi", Year: intPtr(2023)})
	require.NoError(t, err)
	assert.Nil(t, res.ExactMatchID)
	assert.Len(t, res.Invoices, 2)
	repo.AssertExpectations(t)
}

func TestQueryService_ListDistinctStayYears(t *testing.T) {
	repo := new(MockInvoiceRepository)
	repo.On("ListStayYears", mock.Anything, testScope.ARID).Return([]int{2025, 2024}, nil).Once()

	years, err := services.NewQueryService(repo).ListDistinctStayYears(context.Background(), testScope)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024}, years)
}
