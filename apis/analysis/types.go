package analysis

// DefaultAnalysisType is used when a request does not name one.
const DefaultAnalysisType = "mass_spectrometry"

// StatusQueued is the status of every newly accepted analysis.
const StatusQueued = "queued"

// IDPrefix starts every analysis identifier.
const IDPrefix = "analysis_"

// AnalysisRequest is the body of POST /api/v1/analysis.
type AnalysisRequest struct {
	SampleName   string   `json:"sample_name"`
	FileURLs     []string `json:"file_urls"`
	AnalysisType string   `json:"analysis_type"`
}

// AnalysisResponse acknowledges an accepted analysis request.
type AnalysisResponse struct {
	AnalysisID string `json:"analysis_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// Error messages
const (
	ErrInvalidRequest = "invalid analysis request"
	ErrCreateFailed   = "Failed to create analysis"
	ErrNotFound       = "Analysis not found"
	ErrLookupFailed   = "Failed to get analysis"
)
