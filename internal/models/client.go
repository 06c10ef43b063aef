package models

import "time"

// Client is a row of clients.
type Client struct {
	ClientID  int64     `db:"client_id"`
	ARID      int64     `db:"ar_id"`
	Name      string    `db:"name"`
	Email     *string   `db:"email"`
	Company   *string   `db:"company"`
	CreatedAt time.Time `db:"created_at"`
}
