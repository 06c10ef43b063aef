package mapping

import (
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
)

// ToDomainAREntity converts a model AREntity to a domain AREntity
func ToDomainAREntity(m models.AREntity) domain.AREntity {
	return domain.AREntity{
		ARID:      m.ARID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainAREntitySlice converts a slice of model AREntities to domain AREntities
func ToDomainAREntitySlice(ms []models.AREntity) []domain.AREntity {
	ds := make([]domain.AREntity, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAREntity(m)
	}
	return ds
}

// ToDomainAccessGrantSlice converts access grant rows to domain grants
func ToDomainAccessGrantSlice(ms []models.AccessGrant) []domain.AccessGrant {
	ds := make([]domain.AccessGrant, len(ms))
	for i, m := range ms {
		ds[i] = domain.AccessGrant{UserID: m.UserID, ARID: m.ARID, GrantedAt: m.GrantedAt}
	}
	return ds
}
