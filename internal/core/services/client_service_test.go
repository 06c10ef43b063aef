package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClientService_CreateClient(t *testing.T) {
	repo := new(MockClientRepository)
	svc := services.NewClientService(repo)

	repo.On("SaveClient", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.ARID == testScope.ARID && c.Name == "Jane Smith" && c.Email == nil && *c.Company == "Acme"
	})).Run(func(args mock.Arguments) { args.Get(1).(*domain.Client).ClientID = 3 }).Return(nil).Once()

	client, err := svc.CreateClient(context.Background(), testScope, domain.CreateClientInput{
		Name: " Jane Smith ", Email: strPtr("  "), Company: strPtr("Acme"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), client.ClientID)
	repo.AssertExpectations(t)
}

func TestClientService_CreateClientValidation(t *testing.T) {
	svc := services.NewClientService(new(MockClientRepository))
	_, err := svc.CreateClient(context.Background(), testScope, domain.CreateClientInput{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestClientService_DuplicateName(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("SaveClient", mock.Anything, mock.Anything).Return(apperrors.NewConflictError("a client named Jane already exists")).Once()

	_, err := services.NewClientService(repo).CreateClient(context.Background(), testScope, domain.CreateClientInput{Name: "Jane"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestClientService_GetClientOutsideEntity(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("FindClientByID", mock.Anything, testScope.ARID, int64(50)).Return(nil, apperrors.NewNotFoundError("client not found")).Once()

	_, err := services.NewClientService(repo).GetClient(context.Background(), testScope, 50)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
