package llm

import "errors"

var (
	// ErrUnavailable indicates the completion server is unreachable.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrUpstream indicates the server answered with a non-2xx status.
	ErrUpstream = errors.New("llm upstream error")
)
