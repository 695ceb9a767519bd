package order

import "fmt"

// ParseError means the extraction collaborator returned a payload that
// is not well-formed JSON or violates the expected schema. The request
// fails as a whole; no catalog mutation has happened yet.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid extraction payload: " + e.Reason
}

// UpstreamError means the transcription or extraction collaborator
// failed. Stage names which call broke.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
