package repositories

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// AREntityReader defines read operations for A/R entities.
type AREntityReader interface {
	FindAREntityByID(ctx context.Context, arID int64) (*domain.AREntity, error)
	// ListAREntities returns every entity ordered by name.
	ListAREntities(ctx context.Context) ([]domain.AREntity, error)
	// ListAREntitiesByUserID returns the entities a user is granted, ordered by name.
	ListAREntitiesByUserID(ctx context.Context, userID int64) ([]domain.AREntity, error)
}

// AccessGrantRepository manages which users may operate within which entities.
type AccessGrantRepository interface {
	// GrantAccess is a no-op when the grant already exists.
	GrantAccess(ctx context.Context, userID, arID int64) error
	// RevokeAccess is a no-op when there is no grant.
	RevokeAccess(ctx context.Context, userID, arID int64) error
	HasAccess(ctx context.Context, userID, arID int64) (bool, error)
	ListAccessGrants(ctx context.Context) ([]domain.AccessGrant, error)
}

// AREntityRepositoryFacade combines entity and grant operations.
type AREntityRepositoryFacade interface {
	AREntityReader
	AccessGrantRepository
}
