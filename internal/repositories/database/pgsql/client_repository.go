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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientSelect = `SELECT c.client_id, c.ar_id, c.name, c.email, c.company, c.created_at FROM clients c `

func (r *PgxClientRepository) getClients(ctx context.Context, filterQuery string, args ...any) ([]domain.Client, error) {
	rows, err := r.db(ctx).Query(ctx, clientSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query clients", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect client rows", err)
	}
	return mapping.ToDomainClientSlice(ms), nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client *domain.Client) error {
	m := mapping.ToModelClient(*client)
	err := r.db(ctx).QueryRow(ctx, `
		INSERT INTO clients (ar_id, name, email, company)
		VALUES ($1, $2, $3, $4)
		RETURNING client_id, created_at`,
		m.ARID, m.Name, m.Email, m.Company,
	).Scan(&client.ClientID, &client.CreatedAt)
	return translateError(err, "save client", "a client named "+client.Name+" already exists")
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, arID, clientID int64) (*domain.Client, error) {
	clients, err := r.getClients(ctx, `WHERE c.ar_id = $1 AND c.client_id = $2`, arID, clientID)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, apperrors.NewNotFoundError("client not found")
	}
	return &clients[0], nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, arID int64, nameContains string) ([]domain.Client, error) {
	if nameContains == "" {
		return r.getClients(ctx, `WHERE c.ar_id = $1 ORDER BY c.name, c.client_id`, arID)
	}
	return r.getClients(ctx, `WHERE c.ar_id = $1 AND c.name ILIKE $2 ORDER BY c.name, c.client_id`,
		arID, containsPattern(nameContains))
}

func (r *PgxClientRepository) ListCompanies(ctx context.Context, arID int64) ([]string, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT DISTINCT company
		FROM clients
		WHERE ar_id = $1 AND company IS NOT NULL AND btrim(company) <> ''
		ORDER BY company`, arID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query companies", err)
	}
	companies, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect companies", err)
	}
	return companies, nil
}
