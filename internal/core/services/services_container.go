package services

import (
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Identity:           NewIdentityService(repos.TxManager, repos.UserRepo, repos.AREntityRepo),
		Client:             NewClientService(repos.ClientRepo),
		Invoice:            NewInvoiceService(repos.TxManager, repos.InvoiceRepo, repos.PaymentRepo, repos.ClientRepo),
		Payment:            NewPaymentService(repos.TxManager, repos.PaymentRepo, repos.InvoiceRepo),
		Query:              NewQueryService(repos.InvoiceRepo),
		TokenService:       NewTokenService(cfg),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
	}
}
