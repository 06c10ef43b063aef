package mapping

import (
	"fmt"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		InvoiceID:   d.InvoiceID,
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		Method:      string(d.Method),
		CheckNumber: d.CheckNumber,
		CheckDate:   d.CheckDate,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment, rejecting
// rows whose method is not a known PaymentMethod.
func ToDomainPayment(m models.Payment) (domain.Payment, error) {
	method, err := domain.ParsePaymentMethod(m.Method)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("payment %d: %w", m.PaymentID, err)
	}
	return domain.Payment{
		PaymentID:   m.PaymentID,
		InvoiceID:   m.InvoiceID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Method:      method,
		CheckNumber: m.CheckNumber,
		CheckDate:   m.CheckDate,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// ToDomainPaymentSlice converts a slice of model Payments
func ToDomainPaymentSlice(ms []models.Payment) ([]domain.Payment, error) {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		p, err := ToDomainPayment(m)
		if err != nil {
			return nil, err
		}
		ds[i] = p
	}
	return ds, nil
}

// ToDomainPaymentViewSlice converts joined payment rows
func ToDomainPaymentViewSlice(ms []models.PaymentRow) ([]domain.PaymentView, error) {
	ds := make([]domain.PaymentView, len(ms))
	for i, m := range ms {
		p, err := ToDomainPayment(m.Payment)
		if err != nil {
			return nil, err
		}
		ds[i] = domain.PaymentView{
			Payment:       p,
			InvoiceNumber: m.InvoiceNumber,
			ClientName:    m.ClientName,
			ClientCompany: m.ClientCompany,
		}
	}
	return ds, nil
}
