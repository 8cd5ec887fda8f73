package generation

import "errors"

// Failure taxonomy of the generation call. Every one of these is caught at
// the gateway boundary and converted to the fallback dataset; callers never
// observe them.
var (
	// ErrMissingCredential means no API key is configured
	ErrMissingCredential = errors.New("generation: api key not configured")

	// ErrEmptyResponse means the model returned no text
	ErrEmptyResponse = errors.New("generation: empty response body")

	// ErrMalformedResponse means the response body was not valid JSON
	ErrMalformedResponse = errors.New("generation: response is not valid JSON")

	// ErrSchemaMismatch means the response parsed but is missing required collections
	ErrSchemaMismatch = errors.New("generation: response missing required fields")
)

// failureReason maps a generation error to a metrics label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrEmptyResponse), errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrSchemaMismatch):
		return "schema_mismatch"
	default:
		return "transport_failure"
	}
}
