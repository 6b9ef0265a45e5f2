package llm

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no API key can be resolved for the
// active provider. Callers surface it as a setup instruction; it is never
// retried.
var ErrMissingCredential = errors.New("no LLM credential available")

// TransportError wraps a network or provider failure. Retry policy lives in
// the caller, not here.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport error: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError means the provider answered but the payload could
// not be used: unparseable JSON, empty candidates, or missing required keys.
type MalformedResponseError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed LLM response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed LLM response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
