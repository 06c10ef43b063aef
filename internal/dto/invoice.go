package dto

import (
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to bill a stay.
// The amount is derived from the nights between check-in and check-out and the rate.
type CreateInvoiceRequest struct {
	ClientID      int64            `json:"clientID" binding:"required,gt=0"`
	InvoiceNumber string           `json:"invoiceNumber" binding:"required,notblank"`
	IssueDate     string           `json:"issueDate" binding:"required,datetime=2006-01-02"`
	DueDate       string           `json:"dueDate" binding:"required,datetime=2006-01-02"`
	CheckIn       string           `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut      string           `json:"checkOut" binding:"required,datetime=2006-01-02"`
	RatePerNight  *decimal.Decimal `json:"ratePerNight" binding:"required"`
	CaseNumber    *string          `json:"caseNumber"`
}

// ToDomain converts the request into service input, parsing its dates.
func (r CreateInvoiceRequest) ToDomain() (domain.CreateInvoiceInput, error) {
	var (
		in  domain.CreateInvoiceInput
		err error
	)
	if in.IssueDate, err = ParseDate("issueDate", r.IssueDate); err != nil {
		return in, err
	}
	if in.DueDate, err = ParseDate("dueDate", r.DueDate); err != nil {
		return in, err
	}
	if in.CheckIn, err = ParseDate("checkIn", r.CheckIn); err != nil {
		return in, err
	}
	if in.CheckOut, err = ParseDate("checkOut", r.CheckOut); err != nil {
		return in, err
	}
	in.ClientID = r.ClientID
	in.InvoiceNumber = r.InvoiceNumber
	in.RatePerNight = *r.RatePerNight
	in.CaseNumber = r.CaseNumber
	return in, nil
}

// AmendAmountRequest replaces the amount of an open invoice.
type AmendAmountRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Outstanding bool    `form:"outstanding"`
	Client      string  `form:"client"` // Case-insensitive substring of the client name
	Company     *string `form:"company"`
	Year        *int    `form:"year" binding:"omitempty,min=1"`
	Month       *int    `form:"month" binding:"omitempty,min=1,max=12"`
	IncludeVoid bool    `form:"includeVoid"`
	Limit       int     `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken   string  `form:"nextToken"`
}

// SearchParams defines query parameters for invoice search.
type SearchParams struct {
	Q       string  `form:"q"` // Invoice number or client name fragment
	Company *string `form:"company"`
	Year    *int    `form:"year" binding:"omitempty,min=1"`
	Month   *int    `form:"month" binding:"omitempty,min=1,max=12"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     int64            `json:"invoiceID"`
	ClientID      int64            `json:"clientID"`
	InvoiceNumber *string          `json:"invoiceNumber,omitempty"`
	IssueDate     string           `json:"issueDate"`
	DueDate       string           `json:"dueDate"`
	Amount        decimal.Decimal  `json:"amount"`
	Status        string           `json:"status"`
	CheckIn       *string          `json:"checkIn,omitempty"`
	CheckOut      *string          `json:"checkOut,omitempty"`
	Nights        *int             `json:"nights,omitempty"`
	RatePerNight  *decimal.Decimal `json:"ratePerNight,omitempty"`
	CaseNumber    *string          `json:"caseNumber,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// InvoiceViewResponse is an invoice with its client and payment totals.
type InvoiceViewResponse struct {
	InvoiceResponse
	ClientName    string          `json:"clientName"`
	ClientCompany *string         `json:"clientCompany,omitempty"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
}

// InvoiceDetailResponse is an invoice view together with its payments.
type InvoiceDetailResponse struct {
	InvoiceViewResponse
	Payments []PaymentResponse `json:"payments"`
}

// ListInvoicesResponse is one page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceViewResponse `json:"invoices"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// SearchResponse carries exactMatchID when q equals an invoice number.
type SearchResponse struct {
	ExactMatchID *int64                `json:"exactMatchID,omitempty"`
	Invoices     []InvoiceViewResponse `json:"invoices"`
}

// BalanceResponse defines the data returned for an invoice balance query.
type BalanceResponse struct {
	InvoiceID int64           `json:"invoiceID"`
	Amount    decimal.Decimal `json:"amount"`
	Paid      decimal.Decimal `json:"paid"`
	Balance   decimal.Decimal `json:"balance"`
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     formatDate(inv.IssueDate),
		DueDate:       formatDate(inv.DueDate),
		Amount:        inv.Amount,
		Status:        string(inv.Status),
		CheckIn:       formatOptionalDate(inv.CheckIn),
		CheckOut:      formatOptionalDate(inv.CheckOut),
		Nights:        inv.Nights,
		RatePerNight:  inv.RatePerNight,
		CaseNumber:    inv.CaseNumber,
		CreatedAt:     inv.CreatedAt,
	}
}

func ToInvoiceViewResponse(v *domain.InvoiceView) InvoiceViewResponse {
	return InvoiceViewResponse{
		InvoiceResponse: ToInvoiceResponse(&v.Invoice),
		ClientName:      v.ClientName,
		ClientCompany:   v.ClientCompany,
		Paid:            v.Paid,
		Balance:         v.Balance,
	}
}

// ToListInvoiceViewResponse converts views, returning an empty slice rather than nil.
func ToListInvoiceViewResponse(views []domain.InvoiceView) []InvoiceViewResponse {
	res := make([]InvoiceViewResponse, len(views))
	for i := range views {
		res[i] = ToInvoiceViewResponse(&views[i])
	}
	return res
}

func ToInvoiceDetailResponse(d *domain.InvoiceDetail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		InvoiceViewResponse: ToInvoiceViewResponse(&d.InvoiceView),
		Payments:            ToListPaymentResponse(d.Payments),
	}
}

func ToBalanceResponse(invoiceID int64, b *domain.BalanceSummary) BalanceResponse {
	return BalanceResponse{
		InvoiceID: invoiceID,
		Amount:    b.Amount,
		Paid:      b.Paid,
		Balance:   b.Balance,
	}
}
