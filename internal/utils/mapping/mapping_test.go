package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainInvoiceView_DerivesBalance(t *testing.T) {
	row := models.InvoiceRow{
		Invoice: models.Invoice{
			InvoiceID:    1,
			ARID:         2,
			ClientID:     3,
			IssueDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			DueDate:      time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.RequireFromString("300.000000"),
			Status:       "OPEN",
			RatePerNight: decimal.NewNullDecimal(decimal.NewFromInt(100)),
		},
		ClientName: "Jane Roe",
		Paid:       decimal.RequireFromString("200.000000"),
	}

	view, err := ToDomainInvoiceView(row)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusOpen, view.Status)
	assert.True(t, decimal.NewFromInt(100).Equal(view.Balance))
	require.NotNil(t, view.RatePerNight)
	assert.True(t, decimal.NewFromInt(100).Equal(*view.RatePerNight))
}

func TestToDomainInvoice_RejectsUnknownStatus(t *testing.T) {
	_, err := ToDomainInvoice(models.Invoice{InvoiceID: 9, Status: "PAID"})
	assert.Error(t, err)
}

func TestToDomainPayment_RejectsUnknownMethod(t *testing.T) {
	_, err := ToDomainPayment(models.Payment{PaymentID: 4, Method: "wire"})
	assert.Error(t, err)

	p, err := ToDomainPayment(models.Payment{PaymentID: 4, Method: "check"})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodCheck, p.Method)
}

func TestInvoiceModelRoundTrip_KeepsNullRate(t *testing.T) {
	d := domain.Invoice{InvoiceID: 5, Status: domain.InvoiceStatusVoid}
	m := ToModelInvoice(d)
	assert.False(t, m.RatePerNight.Valid)
	assert.Equal(t, "VOID", m.Status)

	back, err := ToDomainInvoice(m)
	require.NoError(t, err)
	assert.Nil(t, back.RatePerNight)
}
