package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/accounting"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/stay"
	"github.com/shopspring/decimal"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	paymentRepo portsrepo.PaymentReader
	clientRepo  portsrepo.ClientReader
}

// NewInvoiceService creates the invoice ledger. Mutations lock the invoice row
// for the length of the transaction.
func NewInvoiceService(
	txManager portsrepo.TransactionManager,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	paymentRepo portsrepo.PaymentReader,
	clientRepo portsrepo.ClientReader,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService: BaseService{TxManager: txManager},
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, scope domain.Scope, input domain.CreateInvoiceInput) (inv *domain.Invoice, err error) {
	defer func() { s.recordLedgerOutcome(ctx, "create_invoice", err, slog.Int64("client_id", input.ClientID)) }()

	if _, err := s.clientRepo.FindClientByID(ctx, scope.ARID, input.ClientID); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.InvoiceNumber)
	if number == "" {
		return nil, apperrors.NewValidationFailedError("invoice number is required")
	}
	exists, err := s.invoiceRepo.InvoiceNumberExists(ctx, scope.ARID, number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewValidationFailedError("invoice number " + number + " already exists")
	}

	checkIn, checkOut := stay.Day(input.CheckIn), stay.Day(input.CheckOut)
	nights := stay.Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, apperrors.NewValidationFailedError("check-out must be after check-in")
	}
	if input.RatePerNight.IsNegative() {
		return nil, apperrors.NewValidationFailedError("rate per night cannot be negative")
	}
	issue, due := stay.Day(input.IssueDate), stay.Day(input.DueDate)
	if due.Before(issue) {
		return nil, apperrors.NewValidationFailedError("due date cannot be before issue date")
	}

	rate := input.RatePerNight
	inv = &domain.Invoice{
		ARID:          scope.ARID,
		ClientID:      input.ClientID,
		InvoiceNumber: &number,
		IssueDate:     issue,
		DueDate:       due,
		Amount:        accounting.InvoiceAmount(nights, rate),
		Status:        domain.InvoiceStatusOpen,
		CheckIn:       &checkIn,
		CheckOut:      &checkOut,
		Nights:        &nights,
		RatePerNight:  &rate,
		CaseNumber:    optionalText(input.CaseNumber),
	}
	if err := s.invoiceRepo.SaveInvoice(ctx, inv); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Invoice created", slog.Int64("invoice_id", inv.InvoiceID), slog.String("amount", inv.Amount.StringFixed(2)))
	return inv, nil
}

func (s *invoiceService) VoidInvoice(ctx context.Context, scope domain.Scope, invoiceID int64) (err error) {
	defer func() { s.recordLedgerOutcome(ctx, "void_invoice", err, slog.Int64("invoice_id", invoiceID)) }()

	return s.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := s.invoiceRepo.FindInvoiceForUpdate(ctx, scope.ARID, invoiceID)
		if err != nil {
			return err
		}
		if inv.Status == domain.InvoiceStatusVoid {
			return nil
		}
		return s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceStatusVoid)
	})
}

func (s *invoiceService) AmendAmount(ctx context.Context, scope domain.Scope, invoiceID int64, newAmount decimal.Decimal) (err error) {
	defer func() { s.recordLedgerOutcome(ctx, "amend_invoice_amount", err, slog.Int64("invoice_id", invoiceID)) }()

	return s.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := s.invoiceRepo.FindInvoiceForUpdate(ctx, scope.ARID, invoiceID)
		if err != nil {
			return err
		}
		if !inv.Status.AcceptsMutations() {
			return apperrors.ErrVoidInvoice
		}
		if newAmount.IsNegative() {
			return apperrors.NewValidationFailedError("amount cannot be negative")
		}
		if !accounting.HasCentPrecision(newAmount) {
			return apperrors.NewValidationFailedError("amount cannot have more than two decimal places")
		}
		paid, err := s.paymentRepo.SumPayments(ctx, invoiceID, 0)
		if err != nil {
			return err
		}
		if accounting.FallsBelow(newAmount, paid) {
			return apperrors.NewBelowPaidError(paid)
		}
		return s.invoiceRepo.UpdateInvoiceAmount(ctx, invoiceID, newAmount)
	})
}

func (s *invoiceService) Balance(ctx context.Context, scope domain.Scope, invoiceID int64) (*domain.BalanceSummary, error) {
	view, err := s.invoiceRepo.FindInvoiceView(ctx, scope.ARID, invoiceID)
	if err != nil {
		return nil, err
	}
	summary := accounting.Summarize(view.Amount, view.Paid)
	return &summary, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, scope domain.Scope, invoiceID int64) (*domain.InvoiceDetail, error) {
	view, err := s.invoiceRepo.FindInvoiceView(ctx, scope.ARID, invoiceID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return &domain.InvoiceDetail{InvoiceView: *view, Payments: payments}, nil
}
