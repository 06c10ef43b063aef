package models

import "time"

// AREntity is a row of ar_entities.
type AREntity struct {
	ARID      int64     `db:"ar_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// AccessGrant is a row of user_ar_access.
type AccessGrant struct {
	UserID    int64     `db:"user_id"`
	ARID      int64     `db:"ar_id"`
	GrantedAt time.Time `db:"granted_at"`
}
