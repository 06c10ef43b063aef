package apperrors

// ScopeReason identifies why a request could not be bound to a user and A/R entity.
type ScopeReason string

const (
	ScopeNotAuthenticated ScopeReason = "not_authenticated"
	ScopeNoARSelected     ScopeReason = "no_ar_selected"
	ScopeARNotAllowed     ScopeReason = "ar_not_allowed"
)

// ScopeError is returned by scope resolution. A ScopeError with an empty
// Reason matches every ScopeError under errors.Is.
type ScopeError struct {
	Reason ScopeReason
}

func (e *ScopeError) Error() string {
	switch e.Reason {
	case ScopeNotAuthenticated:
		return "not authenticated"
	case ScopeNoARSelected:
		return "no A/R entity selected"
	case ScopeARNotAllowed:
		return "access to this A/R entity is not allowed"
	default:
		return "scope error"
	}
}

func (e *ScopeError) Is(target error) bool {
	t, ok := target.(*ScopeError)
	if !ok {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

var (
	ErrScope            = &ScopeError{}
	ErrNotAuthenticated = &ScopeError{Reason: ScopeNotAuthenticated}
	ErrNoARSelected     = &ScopeError{Reason: ScopeNoARSelected}
	ErrARNotAllowed     = &ScopeError{Reason: ScopeARNotAllowed}
)
