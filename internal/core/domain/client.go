package domain

import "time"

// Client is a billed party. Names are unique within an A/R entity.
type Client struct {
	ClientID  int64     `json:"clientID"`
	ARID      int64     `json:"arID"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Company   *string   `json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateClientInput holds the fields for a new client.
type CreateClientInput struct {
	Name    string
	Email   *string
	Company *string
}
