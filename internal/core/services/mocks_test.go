package services_test

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTxManager runs the unit of work inline and counts calls.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) LockUsers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock AREntityRepository ---
type MockAREntityRepository struct {
	mock.Mock
}

var _ portsrepo.AREntityRepositoryFacade = (*MockAREntityRepository)(nil)

func (m *MockAREntityRepository) FindAREntityByID(ctx context.Context, arID int64) (*domain.AREntity, error) {
	args := m.Called(ctx, arID)
	var e *domain.AREntity
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.AREntity)
	}
	return e, args.Error(1)
}

func (m *MockAREntityRepository) ListAREntities(ctx context.Context) ([]domain.AREntity, error) {
	args := m.Called(ctx)
	var es []domain.AREntity
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.AREntity)
	}
	return es, args.Error(1)
}

func (m *MockAREntityRepository) ListAREntitiesByUserID(ctx context.Context, userID int64) ([]domain.AREntity, error) {
	args := m.Called(ctx, userID)
	var es []domain.AREntity
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.AREntity)
	}
	return es, args.Error(1)
}

func (m *MockAREntityRepository) GrantAccess(ctx context.Context, userID, arID int64) error {
	return m.Called(ctx, userID, arID).Error(0)
}

func (m *MockAREntityRepository) RevokeAccess(ctx context.Context, userID, arID int64) error {
	return m.Called(ctx, userID, arID).Error(0)
}

func (m *MockAREntityRepository) HasAccess(ctx context.Context, userID, arID int64) (bool, error) {
	args := m.Called(ctx, userID, arID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAREntityRepository) ListAccessGrants(ctx context.Context) ([]domain.AccessGrant, error) {
	args := m.Called(ctx)
	var gs []domain.AccessGrant
	if args.Get(0) != nil {
		gs = args.Get(0).([]domain.AccessGrant)
	}
	return gs, args.Error(1)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, arID, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, arID, clientID)
	var c *domain.Client
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Client)
	}
	return c, args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, arID int64, nameContains string) ([]domain.Client, error) {
	args := m.Called(ctx, arID, nameContains)
	var cs []domain.Client
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.Client)
	}
	return cs, args.Error(1)
}

func (m *MockClientRepository) ListCompanies(ctx context.Context, arID int64) ([]string, error) {
	args := m.Called(ctx, arID)
	var cs []string
	if args.Get(0) != nil {
		cs = args.Get(0).([]string)
	}
	return cs, args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, arID, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, arID, invoiceID)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceForUpdate(ctx context.Context, arID, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, arID, invoiceID)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	return inv, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceIDByNumber(ctx context.Context, arID int64, invoiceNumber string) (int64, error) {
	args := m.Called(ctx, arID, invoiceNumber)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) InvoiceNumberExists(ctx context.Context, arID int64, invoiceNumber string) (bool, error) {
	args := m.Called(ctx, arID, invoiceNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceView(ctx context.Context, arID, invoiceID int64) (*domain.InvoiceView, error) {
	args := m.Called(ctx, arID, invoiceID)
	var v *domain.InvoiceView
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.InvoiceView)
	}
	return v, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoiceViews(ctx context.Context, q portsrepo.InvoiceQuery) ([]domain.InvoiceView, error) {
	args := m.Called(ctx, q)
	var vs []domain.InvoiceView
	if args.Get(0) != nil {
		vs = args.Get(0).([]domain.InvoiceView)
	}
	return vs, args.Error(1)
}

func (m *MockInvoiceRepository) ListStayYears(ctx context.Context, arID int64) ([]int, error) {
	args := m.Called(ctx, arID)
	var ys []int
	if args.Get(0) != nil {
		ys = args.Get(0).([]int)
	}
	return ys, args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status domain.InvoiceStatus) error {
	return m.Called(ctx, invoiceID, status).Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceAmount(ctx context.Context, invoiceID int64, amount decimal.Decimal) error {
	return m.Called(ctx, invoiceID, amount).Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, arID, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, arID, paymentID)
	var p *domain.Payment
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Payment)
	}
	return p, args.Error(1)
}

func (m *MockPaymentRepository) SumPayments(ctx context.Context, invoiceID, excludePaymentID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, invoiceID, excludePaymentID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	var ps []domain.Payment
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.Payment)
	}
	return ps, args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentViews(ctx context.Context, arID int64) ([]domain.PaymentView, error) {
	args := m.Called(ctx, arID)
	var ps []domain.PaymentView
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.PaymentView)
	}
	return ps, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment *domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	return m.Called(ctx, paymentID).Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openInvoice(id, arID int64, amount string) *domain.Invoice {
	return &domain.Invoice{InvoiceID: id, ARID: arID, ClientID: 1, Amount: dec(amount), Status: domain.InvoiceStatusOpen}
}

var testScope = domain.Scope{User: domain.User{UserID: 1}, ARID: 10}
