package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// optionalText trims s and maps blank to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (s *clientService) CreateClient(ctx context.Context, scope domain.Scope, input domain.CreateClientInput) (*domain.Client, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("client name is required")
	}
	client := &domain.Client{
		ARID:    scope.ARID,
		Name:    name,
		Email:   optionalText(input.Email),
		Company: optionalText(input.Company),
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to create client", slog.String("name", name))
		return nil, err
	}
	s.LogInfo(ctx, "Client created", slog.Int64("client_id", client.ClientID))
	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, scope domain.Scope, clientID int64) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, scope.ARID, clientID)
}

func (s *clientService) ListClients(ctx context.Context, scope domain.Scope, nameContains string) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx, scope.ARID, strings.TrimSpace(nameContains))
}

func (s *clientService) ListCompanies(ctx context.Context, scope domain.Scope) ([]string, error) {
	return s.clientRepo.ListCompanies(ctx, scope.ARID)
}
