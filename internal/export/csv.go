// Package export renders invoice and payment listings as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/utils"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/stay"
)

var (
	InvoiceHeader = []string{
		"id", "invoice_number", "client", "company", "issue_date", "due_date", "status",
		"check_in", "check_out", "nights", "rate_per_night", "case_number", "amount", "paid", "balance",
	}
	PaymentHeader = []string{
		"payment_id", "invoice_number", "client", "company", "amount", "payment_date",
		"method", "check_number", "check_date",
	}
)

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func date(t time.Time) string {
	return t.Format(stay.DateLayout)
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return date(*t)
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// WriteInvoicesCSV writes one row per invoice, VOID invoices included.
func WriteInvoicesCSV(w io.Writer, invoices []domain.InvoiceView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(InvoiceHeader); err != nil {
		return fmt.Errorf("failed to write invoice header: %w", err)
	}
	for _, inv := range invoices {
		row := []string{
			strconv.FormatInt(inv.InvoiceID, 10),
			text(inv.InvoiceNumber),
			inv.ClientName,
			text(inv.ClientCompany),
			date(inv.IssueDate),
			date(inv.DueDate),
			string(inv.Status),
			optionalDate(inv.CheckIn),
			optionalDate(inv.CheckOut),
			optionalInt(inv.Nights),
			utils.FormatOptionalMoney(inv.RatePerNight),
			text(inv.CaseNumber),
			utils.FormatMoney(inv.Amount),
			utils.FormatMoney(inv.Paid),
			utils.FormatMoney(inv.Balance),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write invoice %d: %w", inv.InvoiceID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePaymentsCSV writes one row per payment.
func WritePaymentsCSV(w io.Writer, payments []domain.PaymentView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PaymentHeader); err != nil {
		return fmt.Errorf("failed to write payment header: %w", err)
	}
	for _, p := range payments {
		row := []string{
			strconv.FormatInt(p.PaymentID, 10),
			text(p.InvoiceNumber),
			p.ClientName,
			text(p.ClientCompany),
			utils.FormatMoney(p.Amount),
			date(p.PaymentDate),
			string(p.Method),
			text(p.CheckNumber),
			optionalDate(p.CheckDate),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write payment %d: %w", p.PaymentID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
