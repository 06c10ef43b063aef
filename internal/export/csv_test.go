package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteInvoicesCSV(t *testing.T) {
	number := "INV-1"
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	nights := 3
	rate := decimal.RequireFromString("100")

	invoices := []domain.InvoiceView{
		{
			Invoice: domain.Invoice{
				InvoiceID: 1, InvoiceNumber: &number,
				IssueDate: checkOut, DueDate: checkOut.AddDate(0, 1, 0),
				Amount: decimal.RequireFromString("300"), Status: domain.InvoiceStatusOpen,
				CheckIn: &checkIn, CheckOut: &checkOut, Nights: &nights, RatePerNight: &rate,
			},
			ClientName: "Smith, Jane",
			Paid:       decimal.RequireFromString("100.5"),
			Balance:    decimal.RequireFromString("199.5"),
		},
		{
			Invoice: domain.Invoice{
				InvoiceID: 2, IssueDate: checkIn, DueDate: checkIn,
				Amount: decimal.Zero, Status: domain.InvoiceStatusVoid,
			},
			ClientName: "Acme",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteInvoicesCSV(&buf, invoices))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(InvoiceHeader, ","), lines[0])
	assert.Equal(t, `1,INV-1,"Smith, Jane",,2024-01-04,2024-02-04,OPEN,2024-01-01,2024-01-04,3,100.00,,300.00,100.50,199.50`, lines[1])
	assert.Equal(t, `2,,Acme,,2024-01-01,2024-01-01,VOID,,,,,,0.00,0.00,0.00`, lines[2])
}

func TestWritePaymentsCSV(t *testing.T) {
	number := "INV-1"
	checkNo := "1001"
	paidOn := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	payments := []domain.PaymentView{
		{
			Payment: domain.Payment{
				PaymentID: 9, Amount: decimal.RequireFromString("50"), PaymentDate: paidOn,
				Method: domain.PaymentMethodCheck, CheckNumber: &checkNo, CheckDate: &paidOn,
			},
			InvoiceNumber: &number,
			ClientName:    "Acme",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePaymentsCSV(&buf, payments))
	assert.Equal(t,
		strings.Join(PaymentHeader, ",")+"\n9,INV-1,Acme,,50.00,2024-03-02,check,1001,2024-03-02\n",
		buf.String())
}
