package domain

// Session is the state carried by a signed session token.
// A zero UserID means nobody is signed in; a zero ARID means no entity is selected.
type Session struct {
	UserID int64
	ARID   int64
}

// IsAuthenticated reports whether the session names a user.
func (s Session) IsAuthenticated() bool {
	return s.UserID > 0
}

// HasAREntity reports whether an A/R entity is selected.
func (s Session) HasAREntity() bool {
	return s.ARID > 0
}

// Scope is a resolved session: a user that still exists and an A/R entity
// they are still granted. Every ledger and query operation takes one.
type Scope struct {
	User User
	ARID int64
}
