package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `p.payment_id, p.invoice_id, p.amount, p.payment_date, p.method,
	p.check_number, p.check_date, p.created_at`

func (r *PgxPaymentRepository) getPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query payments", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect payment rows", err)
	}
	payments, err := mapping.ToDomainPaymentSlice(ms)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map payments", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, arID, paymentID int64) (*domain.Payment, error) {
	payments, err := r.getPayments(ctx, `
		SELECT `+paymentColumns+`
		FROM payments p
		JOIN invoices i ON i.invoice_id = p.invoice_id
		WHERE i.ar_id = $1 AND p.payment_id = $2`, arID, paymentID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.NewNotFoundError("payment not found")
	}
	return &payments[0], nil
}

func (r *PgxPaymentRepository) SumPayments(ctx context.Context, invoiceID, excludePaymentID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE invoice_id = $1 AND payment_id <> $2`, invoiceID, excludePaymentID).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(http.StatusInternalServerError, "failed to sum payments", err)
	}
	return total, nil
}

func (r *PgxPaymentRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return r.getPayments(ctx, `
		SELECT `+paymentColumns+`
		FROM payments p
		WHERE p.invoice_id = $1
		ORDER BY p.payment_date, p.payment_id`, invoiceID)
}

func (r *PgxPaymentRepository) ListPaymentViews(ctx context.Context, arID int64) ([]domain.PaymentView, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+paymentColumns+`,
			i.invoice_number,
			c.name AS client_name,
			c.company AS client_company
		FROM payments p
		JOIN invoices i ON i.invoice_id = p.invoice_id
		JOIN clients c ON c.client_id = i.client_id
		WHERE i.ar_id = $1
		ORDER BY p.payment_date, p.payment_id`, arID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query payments", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PaymentRow])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect payment rows", err)
	}
	views, err := mapping.ToDomainPaymentViewSlice(ms)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map payments", err)
	}
	return views, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment *domain.Payment) error {
	m := mapping.ToModelPayment(*payment)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO payments (invoice_id, amount, payment_date, method, check_number, check_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id, created_at`,
		m.InvoiceID, m.Amount, m.PaymentDate, m.Method, m.CheckNumber, m.CheckDate,
	).Scan(&payment.PaymentID, &payment.CreatedAt)
	return translateError(err, "save payment", "payment already exists")
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE payments
		SET amount = $1, payment_date = $2, method = $3, check_number = $4, check_date = $5
		WHERE payment_id = $6`,
		m.Amount, m.PaymentDate, m.Method, m.CheckNumber, m.CheckDate, m.PaymentID)
	if err != nil {
		return translateError(err, "update payment", "payment conflict")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found")
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM payments WHERE payment_id = $1`, paymentID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found")
	}
	return nil
}
