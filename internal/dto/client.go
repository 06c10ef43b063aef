package dto

import (
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client.
type CreateClientRequest struct {
	Name    string  `json:"name" binding:"required,notblank"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Company *string `json:"company"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID  int64     `json:"clientID"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Company   *string   `json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Name string `form:"name"` // Case-insensitive substring
}

// ToDomain converts the request into service input.
func (r CreateClientRequest) ToDomain() domain.CreateClientInput {
	return domain.CreateClientInput{Name: r.Name, Email: r.Email, Company: r.Company}
}

func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to a slice of ClientResponse DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
