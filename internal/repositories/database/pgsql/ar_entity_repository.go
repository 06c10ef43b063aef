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

type PgxAREntityRepository struct {
	BaseRepository
}

// newPgxAREntityRepository creates a repository for A/R entities and access grants.
func newPgxAREntityRepository(pool *pgxpool.Pool) *PgxAREntityRepository {
	return &PgxAREntityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AREntityRepositoryFacade = (*PgxAREntityRepository)(nil)

const arEntitySelect = `SELECT e.ar_id, e.name, e.created_at FROM ar_entities e `

func (r *PgxAREntityRepository) getAREntities(ctx context.Context, filterQuery string, args ...any) ([]domain.AREntity, error) {
	rows, err := r.db(ctx).Query(ctx, arEntitySelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query A/R entities", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AREntity])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect A/R entity rows", err)
	}
	return mapping.ToDomainAREntitySlice(ms), nil
}

func (r *PgxAREntityRepository) FindAREntityByID(ctx context.Context, arID int64) (*domain.AREntity, error) {
	entities, err := r.getAREntities(ctx, `WHERE e.ar_id = $1`, arID)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return nil, apperrors.NewNotFoundError("A/R entity not found")
	}
	return &entities[0], nil
}

func (r *PgxAREntityRepository) ListAREntities(ctx context.Context) ([]domain.AREntity, error) {
	return r.getAREntities(ctx, `ORDER BY e.name, e.ar_id`)
}

func (r *PgxAREntityRepository) ListAREntitiesByUserID(ctx context.Context, userID int64) ([]domain.AREntity, error) {
	return r.getAREntities(ctx, `
		JOIN user_ar_access a ON a.ar_id = e.ar_id
		WHERE a.user_id = $1
		ORDER BY e.name, e.ar_id`, userID)
}

func (r *PgxAREntityRepository) GrantAccess(ctx context.Context, userID, arID int64) error {
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO user_ar_access (user_id, ar_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, ar_id) DO NOTHING`, userID, arID)
	return translateError(err, "grant A/R access", "access already granted")
}

func (r *PgxAREntityRepository) RevokeAccess(ctx context.Context, userID, arID int64) error {
	_, err := r.db(ctx).Exec(ctx, `DELETE FROM user_ar_access WHERE user_id = $1 AND ar_id = $2`, userID, arID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to revoke A/R access", err)
	}
	return nil
}

func (r *PgxAREntityRepository) HasAccess(ctx context.Context, userID, arID int64) (bool, error) {
	var exists bool
	err := r.db(ctx).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM user_ar_access WHERE user_id = $1 AND ar_id = $2)`,
		userID, arID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to check A/R access", err)
	}
	return exists, nil
}

func (r *PgxAREntityRepository) ListAccessGrants(ctx context.Context) ([]domain.AccessGrant, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT user_id, ar_id, granted_at FROM user_ar_access ORDER BY user_id, ar_id`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query access grants", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccessGrant])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect access grant rows", err)
	}
	return mapping.ToDomainAccessGrantSlice(ms), nil
}
