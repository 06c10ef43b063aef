package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/apperrors"
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_payment_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
	"github.com/SscSPs/ar_payment_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelect = `
SELECT u.user_id, u.name, u.email, u.password_salt, u.password_hash, u.is_admin, u.created_at
FROM users u
`

func (r *PgxUserRepository) findOne(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	rows, err := r.db(ctx).Query(ctx, userSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query user", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, notFoundOr(err, "user", "collect user row")
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	modelUser := mapping.ToModelUser(*user)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO users (name, email, password_salt, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at`,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordSalt,
		modelUser.PasswordHash,
		modelUser.IsAdmin,
	).Scan(&user.UserID, &user.CreatedAt)
	return translateError(err, "save user", "an account with this email already exists")
}

func (r *PgxUserRepository) LockUsers(ctx context.Context) error {
	if _, err := r.db(ctx).Exec(ctx, `LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to lock users table", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findOne(ctx, `WHERE u.user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE u.email = $1`, email)
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to count users", err)
	}
	return count, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db(ctx).Query(ctx, userSelect+`ORDER BY u.name, u.user_id`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query users", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect user rows", err)
	}
	return mapping.ToDomainUserSlice(ms), nil
}
