package dto

// ErrorResponse is the body of every failed API call.
// Reason and Limit are set when a ledger rule rejected the request; Limit is
// the largest (or smallest) amount that would have been accepted.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Reason  string             `json:"reason,omitempty"`
	Limit   *string            `json:"limit,omitempty"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one field that failed request validation.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
