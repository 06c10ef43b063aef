package repositories

import (
	"context"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// UserReader defines read operations for users.
type UserReader interface {
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	// FindUserByEmail expects an already normalised email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	// SaveUser inserts the user and sets its UserID and CreatedAt.
	SaveUser(ctx context.Context, user *domain.User) error
	// LockUsers serialises registrations until the surrounding transaction ends.
	LockUsers(ctx context.Context) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
