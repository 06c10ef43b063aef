package domain

import "time"

// AREntity is a billing book. Every client, invoice and payment belongs to exactly one.
type AREntity struct {
	ARID      int64     `json:"arID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccessGrant allows a user to operate within an A/R entity.
type AccessGrant struct {
	UserID    int64     `json:"userID"`
	ARID      int64     `json:"arID"`
	GrantedAt time.Time `json:"grantedAt"`
}

// UserAccess is one row of the admin access matrix.
type UserAccess struct {
	User       User       `json:"user"`
	AREntities []AREntity `json:"arEntities"` // Entities the user may operate within
}
