package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `i.invoice_id, i.ar_id, i.client_id, i.invoice_number, i.issue_date, i.due_date,
	i.amount, i.status, i.check_in, i.check_out, i.nights, i.rate_per_night, i.case_number, i.created_at`

const invoiceViewSelect = `
SELECT ` + invoiceColumns + `,
	c.name AS client_name,
	c.company AS client_company,
	COALESCE(p.paid, 0) AS paid
FROM invoices i
JOIN clients c ON c.client_id = i.client_id
LEFT JOIN (
	SELECT invoice_id, SUM(amount) AS paid FROM payments GROUP BY invoice_id
) p ON p.invoice_id = i.invoice_id
`

func (r *PgxInvoiceRepository) findInvoice(ctx context.Context, query string, args ...any) (*domain.Invoice, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query invoice", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Invoice])
	if err != nil {
		return nil, notFoundOr(err, "invoice", "collect invoice row")
	}
	inv, err := mapping.ToDomainInvoice(m)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map invoice", err)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, arID, invoiceID int64) (*domain.Invoice, error) {
	return r.findInvoice(ctx, `SELECT `+invoiceColumns+` FROM invoices i WHERE i.ar_id = $1 AND i.invoice_id = $2`,
		arID, invoiceID)
}

func (r *PgxInvoiceRepository) FindInvoiceForUpdate(ctx context.Context, arID, invoiceID int64) (*domain.Invoice, error) {
	return r.findInvoice(ctx, `SELECT `+invoiceColumns+` FROM invoices i WHERE i.ar_id = $1 AND i.invoice_id = $2 FOR UPDATE`,
		arID, invoiceID)
}

func (r *PgxInvoiceRepository) FindInvoiceIDByNumber(ctx context.Context, arID int64, invoiceNumber string) (int64, error) {
	var id int64
	err := r.db(ctx).QueryRow(ctx, `
		SELECT invoice_id FROM invoices
		WHERE ar_id = $1 AND invoice_number = $2
		ORDER BY invoice_id
		LIMIT 1`, arID, invoiceNumber).Scan(&id)
	if err != nil {
		return 0, notFoundOr(err, "invoice", "look up invoice number")
	}
	return id, nil
}

func (r *PgxInvoiceRepository) InvoiceNumberExists(ctx context.Context, arID int64, invoiceNumber string) (bool, error) {
	var exists bool
	err := r.db(ctx).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM invoices WHERE ar_id = $1 AND invoice_number = $2)`,
		arID, invoiceNumber).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to check invoice number", err)
	}
	return exists, nil
}

func (r *PgxInvoiceRepository) getInvoiceViews(ctx context.Context, query string, args ...any) ([]domain.InvoiceView, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query invoices", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InvoiceRow])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect invoice rows", err)
	}
	views, err := mapping.ToDomainInvoiceViewSlice(ms)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map invoices", err)
	}
	return views, nil
}

func (r *PgxInvoiceRepository) FindInvoiceView(ctx context.Context, arID, invoiceID int64) (*domain.InvoiceView, error) {
	views, err := r.getInvoiceViews(ctx, invoiceViewSelect+`WHERE i.ar_id = $1 AND i.invoice_id = $2`, arID, invoiceID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, apperrors.NewNotFoundError("invoice not found")
	}
	return &views[0], nil
}

// invoiceQueryBuilder accumulates WHERE conditions with positional arguments.
type invoiceQueryBuilder struct {
	conds []string
	args  []any
}

func (b *invoiceQueryBuilder) add(cond string, args ...any) {
	for _, a := range args {
		b.args = append(b.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.conds = append(b.conds, cond)
}

func buildInvoiceQuery(q portsrepo.InvoiceQuery) (string, []any) {
	b := &invoiceQueryBuilder{}
	b.add("i.ar_id = ?", q.ARID)
	if !q.IncludeVoid {
		b.add(fmt.Sprintf("i.status <> '%s'", domain.InvoiceStatusVoid))
	}
	if q.Outstanding {
		b.add("ROUND(i.amount - COALESCE(p.paid, 0), 2) > 0")
	}
	if q.ClientID != nil {
		b.add("i.client_id = ?", *q.ClientID)
	}
	if q.ClientNameContains != "" {
		b.add("c.name ILIKE ?", containsPattern(q.ClientNameContains))
	}
	if q.Text != "" {
		pattern := containsPattern(q.Text)
		b.add("(i.invoice_number ILIKE ? OR c.name ILIKE ?)", pattern, pattern)
	}
	if q.Company != nil {
		b.add("c.company = ?", *q.Company)
	}
	if q.Window != nil {
		b.add("i.check_in IS NOT NULL AND i.check_out IS NOT NULL AND i.check_in < ?::date AND i.check_out > ?::date",
			q.Window.End, q.Window.Start)
	}
	if q.AfterID > 0 {
		b.add("i.invoice_id > ?", q.AfterID)
	}

	query := invoiceViewSelect + "WHERE " + strings.Join(b.conds, " AND ") + " ORDER BY i.invoice_id"
	if q.Limit > 0 {
		b.args = append(b.args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(b.args))
	}
	return query, b.args
}

func (r *PgxInvoiceRepository) ListInvoiceViews(ctx context.Context, q portsrepo.InvoiceQuery) ([]domain.InvoiceView, error) {
	query, args := buildInvoiceQuery(q)
	return r.getInvoiceViews(ctx, query, args...)
}

func (r *PgxInvoiceRepository) ListStayYears(ctx context.Context, arID int64) ([]int, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT DISTINCT EXTRACT(YEAR FROM COALESCE(check_in, issue_date))::int AS year
		FROM invoices
		WHERE ar_id = $1
		ORDER BY year DESC`, arID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query stay years", err)
	}
	years, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect stay years", err)
	}
	return years, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	m := mapping.ToModelInvoice(*invoice)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO invoices (ar_id, client_id, invoice_number, issue_date, due_date, amount, status,
			check_in, check_out, nights, rate_per_night, case_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING invoice_id, created_at`,
		m.ARID, m.ClientID, m.InvoiceNumber, m.IssueDate, m.DueDate, m.Amount, m.Status,
		m.CheckIn, m.CheckOut, m.Nights, m.RatePerNight, m.CaseNumber,
	).Scan(&invoice.InvoiceID, &invoice.CreatedAt)
	return translateError(err, "save invoice", "invoice number already exists")
}

func (r *PgxInvoiceRepository) updateInvoice(ctx context.Context, query string, args ...any) error {
	tag, err := r.db(ctx).Exec(ctx, query, args...)
	if err != nil {
		return translateError(err, "update invoice", "invoice conflict")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice not found")
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status domain.InvoiceStatus) error {
	return r.updateInvoice(ctx, `UPDATE invoices SET status = $1 WHERE invoice_id = $2`, string(status), invoiceID)
}

func (r *PgxInvoiceRepository) UpdateInvoiceAmount(ctx context.Context, invoiceID int64, amount decimal.Decimal) error {
	return r.updateInvoice(ctx, `UPDATE invoices SET amount = $1 WHERE invoice_id = $2`, amount, invoiceID)
}
