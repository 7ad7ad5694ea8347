package search

import (
	"errors"
	"fmt"
)

// Error codes for the user-visible failure modes of an event search.
const (
	CodeNotConfigured = "notConfigured"
	CodeNoEvents      = "noEvents"
	CodeNoMatches     = "noMatches"
	CodeConnection    = "connection"
)

// SearchError carries a stable code plus the message shown to the user.
// Every code is recoverable: the user retries by issuing a new search.
type SearchError struct {
	Code    string
	Message string
	Err     error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewNotConfiguredError reports a missing API credential. Unlike the
// suggestion path, this is surfaced to the user.
func NewNotConfiguredError() error {
	return &SearchError{Code: CodeNotConfigured, Message: "System Error: API Key not configured."}
}

// NewNoEventsError reports that the catalog returned nothing at all.
func NewNoEventsError() error {
	return &SearchError{Code: CodeNoEvents, Message: "No upcoming events found."}
}

// NewNoMatchesError reports that the catalog returned events but the
// validity filter removed all of them.
func NewNoMatchesError() error {
	return &SearchError{Code: CodeNoMatches, Message: "No events found matching those filters."}
}

// NewConnectionError wraps a network or decode failure during event search.
func NewConnectionError(err error) error {
	return &SearchError{Code: CodeConnection, Message: "Connection error.", Err: err}
}

// ErrSuperseded reports that a newer search started while this one was in
// flight; its result must be discarded, never displayed.
var ErrSuperseded = errors.New("search superseded by a newer request")

// HasCode reports whether err is a SearchError with the given code.
func HasCode(err error, code string) bool {
	var se *SearchError
	return errors.As(err, &se) && se.Code == code
}
