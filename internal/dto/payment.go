package dto

import (
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentRequest defines the data for adding or replacing a payment.
// Check details are required for method "check" and ignored for "cash".
type PaymentRequest struct {
	Method      string           `json:"method" binding:"required,notblank"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate string           `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	CheckNumber *string          `json:"checkNumber"`
	CheckDate   *string          `json:"checkDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToDomain converts the request into service input, parsing its dates.
func (r PaymentRequest) ToDomain() (domain.PaymentInput, error) {
	paymentDate, err := ParseDate("paymentDate", r.PaymentDate)
	if err != nil {
		return domain.PaymentInput{}, err
	}
	checkDate, err := ParseOptionalDate("checkDate", r.CheckDate)
	if err != nil {
		return domain.PaymentInput{}, err
	}
	return domain.PaymentInput{
		Method:      r.Method,
		Amount:      *r.Amount,
		PaymentDate: paymentDate,
		CheckNumber: r.CheckNumber,
		CheckDate:   checkDate,
	}, nil
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   int64           `json:"paymentID"`
	InvoiceID   int64           `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Method      string          `json:"method"`
	CheckNumber *string         `json:"checkNumber,omitempty"`
	CheckDate   *string         `json:"checkDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		PaymentDate: formatDate(p.PaymentDate),
		Method:      string(p.Method),
		CheckNumber: p.CheckNumber,
		CheckDate:   formatOptionalDate(p.CheckDate),
		CreatedAt:   p.CreatedAt,
	}
}

// ToListPaymentResponse converts payments, returning an empty slice rather than nil.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
