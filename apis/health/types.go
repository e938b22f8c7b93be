package health

// StatusHealthy is the only status the endpoint reports; an unhealthy
// process produces no response at all.
const StatusHealthy = "healthy"

// TimestampLayout renders ISO-8601 UTC with millisecond precision
// (e.g. "2024-01-19T10:00:00.000Z").
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HealthResponse is the health document returned by every health endpoint.
type HealthResponse struct {
	// Status is always "healthy"
	Status string `json:"status"`

	// Message is a human-readable, locale-specific description
	Message string `json:"message"`

	// Timestamp is the ISO-8601 time the document was generated
	Timestamp string `json:"timestamp"`

	// Environment is the deployment-mode label (e.g. "development")
	Environment string `json:"environment"`
}

// Config holds the values a health endpoint reports.
type Config struct {
	Message     string
	Environment string
}
