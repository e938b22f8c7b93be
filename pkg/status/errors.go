package status

// Error messages
const (
	ErrRequestFailed    = "health request failed"
	ErrReadBody         = "failed to read health response"
	ErrMalformedBody    = "malformed health document"
	ErrUnexpectedStatus = "unexpected status"
)
