package llm

import "fmt"

// FailureKind classifies why a generation attempt failed.
type FailureKind string

const (
	// FailureTimeout means the request exceeded the per-request timeout.
	FailureTimeout FailureKind = "timeout"
	// FailureConnection means the endpoint could not be reached or the
	// response could not be read.
	FailureConnection FailureKind = "connection"
	// FailureStatus means the endpoint answered with a non-2xx status.
	FailureStatus FailureKind = "status"
	// FailureEmpty means the endpoint answered but the generated text was
	// blank. A blank summary is useless downstream, so it shares the retry
	// budget with transport failures.
	FailureEmpty FailureKind = "empty_response"
)

// GenerationError is returned by Generate after the retry budget is
// exhausted. Kind and Err describe the most recent attempt's failure.
type GenerationError struct {
	Kind     FailureKind
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate text after %d attempts (%s): %v", e.Attempts, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
