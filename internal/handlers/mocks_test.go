package handlers_test

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) AuthenticateByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) ResolveScope(ctx context.Context, session domain.Session) (domain.Scope, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(domain.Scope), args.Error(1)
}
func (m *MockIdentityService) DefaultAREntity(ctx context.Context, userID int64) (*domain.AREntity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AREntity), args.Error(1)
}
func (m *MockIdentityService) ListAllowedAREntities(ctx context.Context, userID int64) ([]domain.AREntity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AREntity), args.Error(1)
}
func (m *MockIdentityService) SwitchAREntity(ctx context.Context, userID, arID int64) (domain.Session, error) {
	args := m.Called(ctx, userID, arID)
	return args.Get(0).(domain.Session), args.Error(1)
}
func (m *MockIdentityService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) GrantAccess(ctx context.Context, adminUserID, targetUserID, arID int64, allow bool) error {
	args := m.Called(ctx, adminUserID, targetUserID, arID, allow)
	return args.Error(0)
}
func (m *MockIdentityService) ListUsersWithAccess(ctx context.Context, adminUserID int64) ([]domain.UserAccess, error) {
	args := m.Called(ctx, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAccess), args.Error(1)
}
func (m *MockIdentityService) ListAREntities(ctx context.Context, adminUserID int64) ([]domain.AREntity, error) {
	args := m.Called(ctx, adminUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AREntity), args.Error(1)
}

var _ portssvc.IdentitySvcFacade = (*MockIdentityService)(nil)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, scope domain.Scope, input domain.CreateClientInput) (*domain.Client, error) {
	args := m.Called(ctx, scope, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) GetClient(ctx context.Context, scope domain.Scope, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, scope, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, scope domain.Scope, nameContains string) ([]domain.Client, error) {
	args := m.Called(ctx, scope, nameContains)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) ListCompanies(ctx context.Context, scope domain.Scope) ([]string, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, scope domain.Scope, input domain.CreateInvoiceInput) (*domain.Invoice, error) {
	args := m.Called(ctx, scope, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) VoidInvoice(ctx context.Context, scope domain.Scope, invoiceID int64) error {
	args := m.Called(ctx, scope, invoiceID)
	return args.Error(0)
}
func (m *MockInvoiceService) AmendAmount(ctx context.Context, scope domain.Scope, invoiceID int64, newAmount decimal.Decimal) error {
	args := m.Called(ctx, scope, invoiceID, newAmount)
	return args.Error(0)
}
func (m *MockInvoiceService) Balance(ctx context.Context, scope domain.Scope, invoiceID int64) (*domain.BalanceSummary, error) {
	args := m.Called(ctx, scope, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSummary), args.Error(1)
}
func (m *MockInvoiceService) GetInvoice(ctx context.Context, scope domain.Scope, invoiceID int64) (*domain.InvoiceDetail, error) {
	args := m.Called(ctx, scope, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceDetail), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) AddPayment(ctx context.Context, scope domain.Scope, invoiceID int64, input domain.PaymentInput) (*domain.Payment, error) {
	args := m.Called(ctx, scope, invoiceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) UpdatePayment(ctx context.Context, scope domain.Scope, paymentID int64, input domain.PaymentInput) (*domain.Payment, error) {
	args := m.Called(ctx, scope, paymentID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) DeletePayment(ctx context.Context, scope domain.Scope, paymentID int64) error {
	args := m.Called(ctx, scope, paymentID)
	return args.Error(0)
}
func (m *MockPaymentService) ListPayments(ctx context.Context, scope domain.Scope, invoiceID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, scope, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListAllPayments(ctx context.Context, scope domain.Scope) ([]domain.PaymentView, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentView), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock QueryService ---
type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) ListInvoices(ctx context.Context, scope domain.Scope, filter domain.InvoiceFilter) ([]domain.InvoiceView, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceView), args.Error(1)
}
func (m *MockQueryService) Search(ctx context.Context, scope domain.Scope, input domain.SearchInput) (*domain.SearchResult, error) {
	args := m.Called(ctx, scope, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}
func (m *MockQueryService) ListDistinctStayYears(ctx context.Context, scope domain.Scope) ([]int, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

var _ portssvc.QuerySvcFacade = (*MockQueryService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) Enabled() bool {
	return m.Called().Bool(0)
}
func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)
