package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/accounting"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/stay"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
}

// NewPaymentService creates the payment ledger. Every mutation locks the
// invoice row before summing its payments, so concurrent payments on one
// invoice are applied one after the other.
func NewPaymentService(
	txManager portsrepo.TransactionManager,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: BaseService{TxManager: txManager},
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// paymentFields validates the method-dependent fields of input. Cash payments
// never carry check details.
func paymentFields(input domain.PaymentInput) (domain.Payment, error) {
	method, err := domain.ParsePaymentMethod(input.Method)
	if err != nil {
		return domain.Payment{}, apperrors.NewValidationFailedError(err.Error())
	}
	p := domain.Payment{
		Amount:      input.Amount,
		PaymentDate: stay.Day(input.PaymentDate),
		Method:      method,
	}
	if method.RequiresCheckDetails() {
		number := optionalText(input.CheckNumber)
		if number == nil || input.CheckDate == nil || input.CheckDate.IsZero() {
			return domain.Payment{}, apperrors.NewValidationFailedError("check number and check date are required for check payments")
		}
		checkDate := stay.Day(*input.CheckDate)
		p.CheckNumber = number
		p.CheckDate = &checkDate
	}
	return p, nil
}

// checkAmount rejects non-positive or sub-cent amounts and missing dates.
func checkAmount(p domain.Payment) error {
	if !p.Amount.IsPositive() {
		return apperrors.NewValidationFailedError("payment amount must be greater than zero")
	}
	if !accounting.HasCentPrecision(p.Amount) {
		return apperrors.NewValidationFailedError("payment amount cannot have more than two decimal places")
	}
	if p.PaymentDate.IsZero() {
		return apperrors.NewValidationFailedError("payment date is required")
	}
	return nil
}

func (s *paymentService) lockOpenInvoice(ctx context.Context, arID, invoiceID int64) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceForUpdate(ctx, arID, invoiceID)
	if err != nil {
		return nil, err
	}
	if !inv.Status.AcceptsMutations() {
		return nil, apperrors.ErrVoidInvoice
	}
	return inv, nil
}

func (s *paymentService) AddPayment(ctx context.Context, scope domain.Scope, invoiceID int64, input domain.PaymentInput) (payment *domain.Payment, err error) {
	defer func() { s.recordLedgerOutcome(ctx, "add_payment", err, slog.Int64("invoice_id", invoiceID)) }()

	p, err := paymentFields(input)
	if err != nil {
		return nil, err
	}
	p.InvoiceID = invoiceID

	err = s.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := s.lockOpenInvoice(ctx, scope.ARID, invoiceID)
		if err != nil {
			return err
		}
		if err := checkAmount(p); err != nil {
			return err
		}
		paid, err := s.paymentRepo.SumPayments(ctx, invoiceID, 0)
		if err != nil {
			return err
		}
		// Compared unrounded; the limit reported back is whole cents.
		limit := accounting.MaxPaymentAllowed(inv.Amount, paid)
		if !limit.IsPositive() {
			return apperrors.ErrAlreadyPaid
		}
		if accounting.Exceeds(p.Amount, inv.Amount.Sub(paid)) {
			return apperrors.NewExceedsBalanceError(limit)
		}
		return s.paymentRepo.SavePayment(ctx, &p)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Payment added", slog.Int64("payment_id", p.PaymentID), slog.Int64("invoice_id", invoiceID))
	return &p, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, scope domain.Scope, paymentID int64, input domain.PaymentInput) (payment *domain.Payment, err error) {
	defer func() { s.recordLedgerOutcome(ctx, "update_payment", err, slog.Int64("payment_id", paymentID)) }()

	p, err := paymentFields(input)
	if err != nil {
		return nil, err
	}

	err = s.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.paymentRepo.FindPaymentByID(ctx, scope.ARID, paymentID)
		if err != nil {
			return err
		}
		inv, err := s.lockOpenInvoice(ctx, scope.ARID, existing.InvoiceID)
		if err != nil {
			return err
		}
		if err := checkAmount(p); err != nil {
			return err
		}
		others, err := s.paymentRepo.SumPayments(ctx, existing.InvoiceID, paymentID)
		if err != nil {
			return err
		}
		if accounting.Exceeds(others.Add(p.Amount), inv.Amount) {
			return apperrors.NewExceedsInvoiceAmountError(accounting.MaxPaymentAllowed(inv.Amount, others))
		}

		p.PaymentID = paymentID
		p.InvoiceID = existing.InvoiceID
		p.CreatedAt = existing.CreatedAt
		return s.paymentRepo.UpdatePayment(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, scope domain.Scope, paymentID int64) (err error) {
	defer func() { s.recordLedgerOutcome(ctx, "delete_payment", err, slog.Int64("payment_id", paymentID)) }()

	return s.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.paymentRepo.FindPaymentByID(ctx, scope.ARID, paymentID)
		if err != nil {
			return err
		}
		if _, err := s.lockOpenInvoice(ctx, scope.ARID, existing.InvoiceID); err != nil {
			return err
		}
		return s.paymentRepo.DeletePayment(ctx, paymentID)
	})
}

func (s *paymentService) ListPayments(ctx context.Context, scope domain.Scope, invoiceID int64) ([]domain.Payment, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, scope.ARID, invoiceID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsByInvoice(ctx, invoiceID)
}

func (s *paymentService) ListAllPayments(ctx context.Context, scope domain.Scope) ([]domain.PaymentView, error) {
	return s.paymentRepo.ListPaymentViews(ctx, scope.ARID)
}
