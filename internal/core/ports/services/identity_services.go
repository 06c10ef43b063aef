package services

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// AuthenticatorSvc verifies credentials and creates accounts.
type AuthenticatorSvc interface {
	// Register creates an account. The first account ever created is an admin
	// and is granted every A/R entity that exists at that moment.
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	// Authenticate returns apperrors.ErrInvalidCredentials for an unknown
	// email and for a wrong password alike.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// AuthenticateByEmail signs in a user whose email was verified by an
	// external identity provider.
	AuthenticateByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ScopeResolverSvc binds sessions to users and A/R entities.
type ScopeResolverSvc interface {
	// ResolveScope is the gate in front of every ledger and query operation.
	ResolveScope(ctx context.Context, session domain.Session) (domain.Scope, error)
	// DefaultAREntity is the first allowed entity by name, or nil when none is granted.
	DefaultAREntity(ctx context.Context, userID int64) (*domain.AREntity, error)
	ListAllowedAREntities(ctx context.Context, userID int64) ([]domain.AREntity, error)
	// SwitchAREntity returns a session for arID if the user is granted it.
	SwitchAREntity(ctx context.Context, userID, arID int64) (domain.Session, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

// AccessAdminSvc manages access grants. Only admins may call it.
type AccessAdminSvc interface {
	// GrantAccess adds (allow) or removes an access grant idempotently.
	GrantAccess(ctx context.Context, adminUserID, targetUserID, arID int64, allow bool) error
	ListUsersWithAccess(ctx context.Context, adminUserID int64) ([]domain.UserAccess, error)
	ListAREntities(ctx context.Context, adminUserID int64) ([]domain.AREntity, error)
}

// IdentitySvcFacade combines all identity and access operations.
type IdentitySvcFacade interface {
	AuthenticatorSvc
	ScopeResolverSvc
	AccessAdminSvc
}
