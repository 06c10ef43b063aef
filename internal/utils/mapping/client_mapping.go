package mapping

import (
	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	"github.com/SscSPs/ar_payment_tracker/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:  d.ClientID,
		ARID:      d.ARID,
		Name:      d.Name,
		Email:     d.Email,
		Company:   d.Company,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:  m.ClientID,
		ARID:      m.ARID,
		Name:      m.Name,
		Email:     m.Email,
		Company:   m.Company,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
