package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/utils"
)

const minPasswordLength = 8

type identityService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	arEntityRepo portsrepo.AREntityRepositoryFacade
}

// NewIdentityService creates the service behind registration, sign-in and access control.
func NewIdentityService(txManager portsrepo.TransactionManager, userRepo portsrepo.UserRepositoryFacade, arEntityRepo portsrepo.AREntityRepositoryFacade) portssvc.IdentitySvcFacade {
	return &identityService{
		BaseService:  BaseService{TxManager: txManager},
		userRepo:     userRepo,
		arEntityRepo: arEntityRepo,
	}
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *identityService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationFailedError("a valid email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	salt, err := utils.NewPasswordSalt()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate password salt")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to register user", err)
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordSalt: salt,
		PasswordHash: utils.HashPassword(input.Password, salt),
	}

	err = s.WithinTx(ctx, func(ctx context.Context) error {
		// Serialise registrations so exactly one user can become the first admin.
		if err := s.userRepo.LockUsers(ctx); err != nil {
			return err
		}
		if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
			return apperrors.NewConflictError("an account with this email already exists")
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		count, err := s.userRepo.CountUsers(ctx)
		if err != nil {
			return err
		}
		user.IsAdmin = count == 0

		if err := s.userRepo.SaveUser(ctx, user); err != nil {
			return err
		}
		if !user.IsAdmin {
			return nil
		}

		entities, err := s.arEntityRepo.ListAREntities(ctx)
		if err != nil {
			return err
		}
		for _, e := range entities {
			if err := s.arEntityRepo.GrantAccess(ctx, user.UserID, e.ARID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to register user", slog.String("email", email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.UserID), slog.Bool("is_admin", user.IsAdmin))
	return user, nil
}

func (s *identityService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordSalt, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *identityService) AuthenticateByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (s *identityService) ResolveScope(ctx context.Context, session domain.Session) (domain.Scope, error) {
	if !session.IsAuthenticated() {
		return domain.Scope{}, apperrors.ErrNotAuthenticated
	}
	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Scope{}, apperrors.ErrNotAuthenticated
		}
		return domain.Scope{}, err
	}
	if !session.HasAREntity() {
		return domain.Scope{}, apperrors.ErrNoARSelected
	}
	allowed, err := s.arEntityRepo.HasAccess(ctx, user.UserID, session.ARID)
	if err != nil {
		return domain.Scope{}, err
	}
	if !allowed {
		return domain.Scope{}, apperrors.ErrARNotAllowed
	}
	return domain.Scope{User: *user, ARID: session.ARID}, nil
}

func (s *identityService) DefaultAREntity(ctx context.Context, userID int64) (*domain.AREntity, error) {
	entities, err := s.arEntityRepo.ListAREntitiesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, nil
	}
	return &entities[0], nil
}

func (s *identityService) ListAllowedAREntities(ctx context.Context, userID int64) ([]domain.AREntity, error) {
	return s.arEntityRepo.ListAREntitiesByUserID(ctx, userID)
}

func (s *identityService) SwitchAREntity(ctx context.Context, userID, arID int64) (domain.Session, error) {
	allowed, err := s.arEntityRepo.HasAccess(ctx, userID, arID)
	if err != nil {
		return domain.Session{}, err
	}
	if !allowed {
		return domain.Session{}, apperrors.ErrARNotAllowed
	}
	s.LogInfo(ctx, "Switched A/R entity", slog.Int64("user_id", userID), slog.Int64("ar_id", arID))
	return domain.Session{UserID: userID, ARID: arID}, nil
}

func (s *identityService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *identityService) requireAdmin(ctx context.Context, userID int64) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotAuthenticated
		}
		return err
	}
	if !user.IsAdmin {
		return apperrors.NewForbiddenError("admin access required")
	}
	return nil
}

func (s *identityService) GrantAccess(ctx context.Context, adminUserID, targetUserID, arID int64, allow bool) error {
	if err := s.requireAdmin(ctx, adminUserID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		return err
	}
	if _, err := s.arEntityRepo.FindAREntityByID(ctx, arID); err != nil {
		return err
	}

	if allow {
		err := s.arEntityRepo.GrantAccess(ctx, targetUserID, arID)
		if err == nil {
			s.LogInfo(ctx, "A/R access granted", slog.Int64("target_user_id", targetUserID), slog.Int64("ar_id", arID))
		}
		return err
	}
	err := s.arEntityRepo.RevokeAccess(ctx, targetUserID, arID)
	if err == nil {
		s.LogInfo(ctx, "A/R access revoked", slog.Int64("target_user_id", targetUserID), slog.Int64("ar_id", arID))
	}
	return err
}

func (s *identityService) ListUsersWithAccess(ctx context.Context, adminUserID int64) ([]domain.UserAccess, error) {
	if err := s.requireAdmin(ctx, adminUserID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	entities, err := s.arEntityRepo.ListAREntities(ctx)
	if err != nil {
		return nil, err
	}
	grants, err := s.arEntityRepo.ListAccessGrants(ctx)
	if err != nil {
		return nil, err
	}

	type grantKey struct{ userID, arID int64 }
	granted := make(map[grantKey]bool, len(grants))
	for _, g := range grants {
		granted[grantKey{g.UserID, g.ARID}] = true
	}

	// Entities come back ordered by name, so each row is too.
	out := make([]domain.UserAccess, 0, len(users))
	for _, u := range users {
		list := []domain.AREntity{}
		for _, e := range entities {
			if granted[grantKey{u.UserID, e.ARID}] {
				list = append(list, e)
			}
		}
		out = append(out, domain.UserAccess{User: u, AREntities: list})
	}
	return out, nil
}

func (s *identityService) ListAREntities(ctx context.Context, adminUserID int64) ([]domain.AREntity, error) {
	if err := s.requireAdmin(ctx, adminUserID); err != nil {
		return nil, err
	}
	return s.arEntityRepo.ListAREntities(ctx)
}
