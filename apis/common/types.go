package common

// ErrorResponse is the JSON body of every error returned by the services.
type ErrorResponse struct {
	// Error is always true
	Error bool `json:"error"`

	// Message describes what went wrong
	Message string `json:"message"`
}
