package mapping

import (
	"fmt"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	m := models.Invoice{
		InvoiceID:     d.InvoiceID,
		ARID:          d.ARID,
		ClientID:      d.ClientID,
		InvoiceNumber: d.InvoiceNumber,
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		Amount:        d.Amount,
		Status:        string(d.Status),
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Nights:        d.Nights,
		CaseNumber:    d.CaseNumber,
		CreatedAt:     d.CreatedAt,
	}
	if d.RatePerNight != nil {
		m.RatePerNight = decimal.NewNullDecimal(*d.RatePerNight)
	}
	return m
}

// ToDomainInvoice converts a model Invoice to a domain Invoice, rejecting
// rows whose status is not a known InvoiceStatus.
func ToDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	status, err := domain.ParseInvoiceStatus(m.Status)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invoice %d: %w", m.InvoiceID, err)
	}
	d := domain.Invoice{
		InvoiceID:     m.InvoiceID,
		ARID:          m.ARID,
		ClientID:      m.ClientID,
		InvoiceNumber: m.InvoiceNumber,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		Amount:        m.Amount,
		Status:        status,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Nights:        m.Nights,
		CaseNumber:    m.CaseNumber,
		CreatedAt:     m.CreatedAt,
	}
	if m.RatePerNight.Valid {
		rate := m.RatePerNight.Decimal
		d.RatePerNight = &rate
	}
	return d, nil
}

// ToDomainInvoiceView converts a joined invoice row and derives the balance.
func ToDomainInvoiceView(m models.InvoiceRow) (domain.InvoiceView, error) {
	inv, err := ToDomainInvoice(m.Invoice)
	if err != nil {
		return domain.InvoiceView{}, err
	}
	return domain.InvoiceView{
		Invoice:       inv,
		ClientName:    m.ClientName,
		ClientCompany: m.ClientCompany,
		Paid:          m.Paid,
		Balance:       accounting.Balance(inv.Amount, m.Paid),
	}, nil
}

// ToDomainInvoiceViewSlice converts joined invoice rows
func ToDomainInvoiceViewSlice(ms []models.InvoiceRow) ([]domain.InvoiceView, error) {
	ds := make([]domain.InvoiceView, len(ms))
	for i, m := range ms {
		v, err := ToDomainInvoiceView(m)
		if err != nil {
			return nil, err
		}
		ds[i] = v
	}
	return ds, nil
}
