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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockInvoiceRepo *MockInvoiceRepository
	txManager       *fakeTxManager
	service         portssvc.PaymentSvcFacade
	invoiceSvc      portssvc.InvoiceSvcFacade
	ctx             context.Context
	paymentDate     time.Time
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.txManager = &fakeTxManager{}
	suite.service = services.NewPaymentService(suite.txManager, suite.mockPaymentRepo, suite.mockInvoiceRepo)
	suite.invoiceSvc = services.NewInvoiceService(suite.txManager, suite.mockInvoiceRepo, suite.mockPaymentRepo, new(MockClientRepository))
	suite.ctx = context.Background()
	suite.paymentDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) cash(amount string) domain.PaymentInput {
	return domain.PaymentInput{Method: "cash", Amount: dec(amount), PaymentDate: suite.paymentDate}
}

func (suite *PaymentServiceTestSuite) TestAddPayment_GuardsBalance() {
	inv := openInvoice(1, testScope.ARID, "300")

	// 200 against a 300 invoice.
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).Return(inv, nil).Times(3)
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(1), int64(0)).Return(dec("0"), nil).Once()
	suite.mockPaymentRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("*domain.Payment")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Payment).PaymentID = 11 }).
		Return(nil).Once()

	p, err := suite.service.AddPayment(suite.ctx, testScope, 1, suite.cash("200"))
	suite.Require().NoError(err)
	suite.Equal(int64(11), p.PaymentID)

	// 150 now exceeds the remaining 100.
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(1), int64(0)).Return(dec("200"), nil).Twice()

	_, err = suite.service.AddPayment(suite.ctx, testScope, 1, suite.cash("150"))
	suite.Require().ErrorIs(err, apperrors.ErrExceedsBalance)
	var invErr *apperrors.InvariantError
	suite.Require().True(errors.As(err, &invErr))
	suite.Equal("100.00", invErr.Limit.StringFixed(2))

	// 100 settles the invoice.
	suite.mockPaymentRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil).Once()
	_, err = suite.service.AddPayment(suite.ctx, testScope, 1, suite.cash("100"))
	suite.Require().NoError(err)

	suite.mockInvoiceRepo.On("FindInvoiceView", mock.Anything, testScope.ARID, int64(1)).
		Return(&domain.InvoiceView{Invoice: *inv, Paid: dec("300")}, nil).Once()
	summary, err := suite.invoiceSvc.Balance(suite.ctx, testScope, 1)
	suite.Require().NoError(err)
	suite.True(summary.Balance.IsZero())
}

func (suite *PaymentServiceTestSuite) TestAddPayment_AlreadyPaid() {
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(2)).
		Return(openInvoice(2, testScope.ARID, "50"), nil).Once()
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(2), int64(0)).Return(dec("50"), nil).Once()

	_, err := suite.service.AddPayment(suite.ctx, testScope, 2, suite.cash("1"))
	suite.ErrorIs(err, apperrors.ErrAlreadyPaid)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_SubCentInvoiceCannotBeOverpaid() {
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(5)).
		Return(openInvoice(5, testScope.ARID, "300.005"), nil).Twice()
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(5), int64(0)).Return(dec("0"), nil).Twice()

	// The rounded balance would be 300.01, which is more than the invoice amount.
	_, err := suite.service.AddPayment(suite.ctx, testScope, 5, suite.cash("300.01"))
	suite.Require().ErrorIs(err, apperrors.ErrExceedsBalance)
	var invErr *apperrors.InvariantError
	suite.Require().True(errors.As(err, &invErr))
	suite.Equal("300.00", invErr.Limit.StringFixed(2))

	suite.mockPaymentRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil).Once()
	_, err = suite.service.AddPayment(suite.ctx, testScope, 5, suite.cash("300.00"))
	suite.NoError(err)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_SubCentAmountRejected() {
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(6)).
		Return(openInvoice(6, testScope.ARID, "100"), nil).Once()

	_, err := suite.service.AddPayment(suite.ctx, testScope, 6, suite.cash("10.005"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_VoidInvoice() {
	inv := openInvoice(3, testScope.ARID, "100")
	inv.Status = domain.InvoiceStatusVoid
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(3)).Return(inv, nil).Once()

	_, err := suite.service.AddPayment(suite.ctx, testScope, 3, suite.cash("10"))
	suite.ErrorIs(err, apperrors.ErrVoidInvoice)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_NonPositiveAmount() {
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(4)).
		Return(openInvoice(4, testScope.ARID, "100"), nil).Once()

	_, err := suite.service.AddPayment(suite.ctx, testScope, 4, suite.cash("0"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_OtherEntityIsNotFound() {
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(99)).
		Return(nil, apperrors.NewNotFoundError("invoice not found")).Once()

	_, err := suite.service.AddPayment(suite.ctx, testScope, 99, suite.cash("10"))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_MethodCheckedFirst() {
	_, err := suite.service.AddPayment(suite.ctx, testScope, 1, domain.PaymentInput{Method: "card", Amount: dec("1"), PaymentDate: suite.paymentDate})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AddPayment(suite.ctx, testScope, 1, domain.PaymentInput{Method: "check", Amount: dec("1"), PaymentDate: suite.paymentDate})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.txManager.calls)
}

func (suite *PaymentServiceTestSuite) TestAddPayment_CashClearsCheckDetails() {
	number := "1001"
	checkDate := suite.paymentDate
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(5)).
		Return(openInvoice(5, testScope.ARID, "100"), nil).Once()
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(5), int64(0)).Return(dec("0"), nil).Once()
	suite.mockPaymentRepo.On("SavePayment", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Method == domain.PaymentMethodCash && p.CheckNumber == nil && p.CheckDate == nil
	})).Return(nil).Once()

	_, err := suite.service.AddPayment(suite.ctx, testScope, 5, domain.PaymentInput{
		Method: "CASH", Amount: dec("10"), PaymentDate: suite.paymentDate, CheckNumber: &number, CheckDate: &checkDate,
	})
	suite.NoError(err)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_ExceedsInvoiceAmount() {
	existing := &domain.Payment{PaymentID: 7, InvoiceID: 1, Amount: dec("100"), Method: domain.PaymentMethodCash}
	suite.mockPaymentRepo.On("FindPaymentByID", mock.Anything, testScope.ARID, int64(7)).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).
		Return(openInvoice(1, testScope.ARID, "300"), nil).Once()
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(1), int64(7)).Return(dec("200"), nil).Once()

	_, err := suite.service.UpdatePayment(suite.ctx, testScope, 7, suite.cash("150"))
	suite.Require().ErrorIs(err, apperrors.ErrExceedsInvoiceAmount)
	var invErr *apperrors.InvariantError
	suite.Require().True(errors.As(err, &invErr))
	suite.Equal("100.00", invErr.Limit.StringFixed(2))
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_WithinAmount() {
	existing := &domain.Payment{PaymentID: 7, InvoiceID: 1, Amount: dec("100"), Method: domain.PaymentMethodCash}
	suite.mockPaymentRepo.On("FindPaymentByID", mock.Anything, testScope.ARID, int64(7)).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(1)).
		Return(openInvoice(1, testScope.ARID, "300"), nil).Once()
	suite.mockPaymentRepo.On("SumPayments", mock.Anything, int64(1), int64(7)).Return(dec("200"), nil).Once()
	suite.mockPaymentRepo.On("UpdatePayment", mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentID == 7 && p.InvoiceID == 1
	})).Return(nil).Once()

	p, err := suite.service.UpdatePayment(suite.ctx, testScope, 7, suite.cash("100"))
	suite.Require().NoError(err)
	suite.Equal(int64(1), p.InvoiceID)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_VoidInvoice() {
	existing := &domain.Payment{PaymentID: 8, InvoiceID: 3}
	inv := openInvoice(3, testScope.ARID, "100")
	inv.Status = domain.InvoiceStatusVoid
	suite.mockPaymentRepo.On("FindPaymentByID", mock.Anything, testScope.ARID, int64(8)).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceForUpdate", mock.Anything, testScope.ARID, int64(3)).Return(inv, nil).Once()

	err := suite.service.DeletePayment(suite.ctx, testScope, 8)
	suite.ErrorIs(err, apperrors.ErrVoidInvoice)
}

func (suite *PaymentServiceTestSuite) TestListPayments_VoidInvoiceStillReadable() {
	inv := openInvoice(3, testScope.ARID, "100")
	inv.Status = domain.InvoiceStatusVoid
	payments := []domain.Payment{{PaymentID: 1, InvoiceID: 3, Amount: dec("40")}}
	suite.mockInvoiceRepo.On("FindInvoiceByID", mock.Anything, testScope.ARID, int64(3)).Return(inv, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByInvoice", mock.Anything, int64(3)).Return(payments, nil).Once()

	got, err := suite.service.ListPayments(suite.ctx, testScope, 3)
	suite.NoError(err)
	suite.Len(got, 1)
}

func TestPaymentService_CheckRequiresDetails(t *testing.T) {
	svc := services.NewPaymentService(&fakeTxManager{}, new(MockPaymentRepository), new(MockInvoiceRepository))
	blank := "  "
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddPayment(context.Background(), testScope, 1, domain.PaymentInput{
		Method: "check", Amount: dec("5"), PaymentDate: day, CheckNumber: &blank, CheckDate: &day,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
