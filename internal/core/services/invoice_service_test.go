package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockPaymentRepo *MockPaymentRepository
	mockClientRepo  *MockClientRepository
	service         portssvc.InvoiceSvcFacade
	ctx             context.Context
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewInvoiceService(&fakeTxManager{}, suite.mockInvoiceRepo, suite.mockPaymentRepo, suite.mockClientRepo)
	suite.ctx = context.Background()
}

func (suite *InvoiceServiceTestSuite) TearDownTest() {
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *InvoiceServiceTestSuite) validInput() domain.CreateInvoiceInput {
	return domain.CreateInvoiceInput{
		ClientID:      5,
		InvoiceNumber: " INV-1 ",
		IssueDate:     day(2024, 1, 4),
		DueDate:       day(2024, 2, 4),
		CheckIn:       day(2024, 1, 1),
		CheckOut:      day(2024, 1, 4),
		RatePerNight:  dec("100"),
	}
}

func (suite *InvoiceServiceTestSuite) expectClient() {
	suite.mockClientRepo.On("FindClientByID", mock.Anything, testScope.ARID, int64(5)).
		Return(&domain.Client{ClientID: 5, ARID: testScope.ARID, Name: "Acme"}, nil).Once()
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DerivesAmountFromNights() {
	suite.expectClient()
	suite.mockInvoiceRepo.On("InvoiceNumberExists", mock.Anything, testScope.ARID, "INV-1").Return(false, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("*domain.Invoice")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Invoice).InvoiceID = 42 }).
		Return(nil).Once()

	inv, err := suite.service.CreateInvoice(suite.ctx, testScope, suite.validInput())
	suite.Require().NoError(err)
	suite.Equal(int64(42), inv.InvoiceID)
	suite.Equal("300.00", inv.Amount.StringFixed(2))
	suite.Equal(3, *inv.Nights)
	suite.Equal(domain.InvoiceStatusOpen, inv.Status)
	suite.Equal("INV-1", *inv.InvoiceNumber)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ClientOutsideEntity() {
	suite.mockClientRepo.On("FindClientByID", mock.Anything, testScope.ARID, int64(5)).
		Return(nil, apperrors.NewNotFoundError("client not found")).Once()

	_, err := suite.service.CreateInvoice(suite.ctx, testScope, suite.validInput())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	suite.expectClient()
	suite.mockInvoiceRepo.On("InvoiceNumberExists", mock.Anything, testScope.ARID, "INV-1").Return(true, nil).Once()

	_, err := suite.service.CreateInvoice(suite.ctx, testScope, suite.validInput())
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsBadInput() {
	cases := map[string]func(in *domain.CreateInvoiceInput){
		"blank number":     func(in *domain.CreateInvoiceInput) { in.InvoiceNumber = "  " },
		"zero nights":      func(in *domain.CreateInvoiceInput) { in.CheckOut = in.CheckIn },
		"negative rate":    func(in *domain.CreateInvoiceInput) { in.RatePerNight = dec("-1") },
		"due before issue": func(in *domain.CreateInvoiceInput) { in.DueDate = day(2024, 1, 1) },
	}
	for name, mutate := range cases {
		suite.Run(name, func() {
			input := suite.validInput()
			mutate(&input)
			suite.expectClient()
			if name != "blank number" {
				suite.mockInvoiceRepo.On("InvoiceNumberExists", mock.Anything, testScope.ARID, "INV-1").Return(false, nil).Once()
			}
			_, err := suite.service.CreateInvoice(suite.ctx, testScope, input)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (suite *InvoiceServiceTestSuite) TestVoidInvoice_IsMonotonic() {
	inv := openInvoice(1, testScope.ARID, "100")
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).Return(inv, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", mock.Anything, int64(1), domain.InvoiceStatusVoid).Return(nil).Once()
	suite.Require().NoError(suite.service.VoidInvoice(suite.ctx, testScope, 1))

	voided := openInvoice(1, testScope.ARID, "100")
	voided.Status = domain.InvoiceStatusVoid
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).Return(voided, nil).Twice()
	suite.Require().NoError(suite.service.VoidInvoice(suite.ctx, testScope, 1))

	err := suite.service.AmendAmount(suite.ctx, testScope, 1, dec("500"))
	suite.ErrorIs(err, apperrors.ErrVoidInvoice)
}

func (suite *InvoiceServiceTestSuite) TestAmendAmount_GuardsPaidTotal() {
	inv := openInvoice(1, testScope.ARID, "300")
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).Return(inv, nil).Twice()
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(1), int64(0)).Return(dec("200"), nil).Twice()

	err := suite.service.AmendAmount(suite.ctx, testScope, 1, dec("150"))
	suite.Require().ErrorIs(err, apperrors.ErrBelowPaid)
	var invErr *apperrors.InvariantError
	suite.Require().True(errors.As(err, &invErr))
	suite.Equal("200.00", invErr.Limit.StringFixed(2))

	suite.mockInvoiceRepo.On("UpdateInvoiceAmount", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	suite.NoError(suite.service.AmendAmount(suite.ctx, testScope, 1, dec("200")))
}

func (suite *InvoiceServiceTestSuite) TestAmendAmount_Negative() {
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).
		Return(openInvoice(1, testScope.ARID, "300"), nil).Once()

	err := suite.service.AmendAmount(suite.ctx, testScope, 1, dec("-1"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestAmendAmount_SubCentRejected() {
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).
		Return(openInvoice(1, testScope.ARID, "300"), nil).Once()

	err := suite.service.AmendAmount(suite.ctx, testScope, 1, dec("300.005"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceAmount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoice_IncludesPayments() {
	view := &domain.InvoiceView{Invoice: *openInvoice(1, testScope.ARID, "300"), ClientName: "Acme", Paid: dec("100"), Balance: dec("200")}
	payments := []domain.Payment{{PaymentID: 1, InvoiceID: 1, Amount: dec("100")}}
	suite.mockInvoiceRepo.On("FindInvoiceView", mock.Anything, testScope.ARID, int64(1)).Return(view, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByInvoice", mock.Anything, int64(1)).Return(payments, nil).Once()

	detail, err := suite.service.GetInvoice(suite.ctx, testScope, 1)
	suite.Require().NoError(err)
	suite.Equal("Acme", detail.ClientName)
	suite.Len(detail.Payments, 1)
}
