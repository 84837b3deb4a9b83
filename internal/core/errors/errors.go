package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidQueryError  = "invalid_query"
	HttpNotFoundError      = "not_found"
	HttpRunInProgressError = "run_in_progress"
	HttpRunsDisabledError  = "runs_disabled"
	HttpPipelineError      = "pipeline_failed"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
