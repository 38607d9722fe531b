package epak

import "fmt"

type (
	// UpstreamError is returned when the service answers with a non-OK status.
	// The service reports its own failures as plain-text bodies, so Error()
	// returns the body verbatim; Url and StatusCode stay available for
	// diagnostics.
	UpstreamError struct {
		Url        string
		StatusCode int
		Body       string
	}

	// ParseError wraps a response body that is not well-formed XML.
	ParseError struct {
		Err error
	}

	// ShapeError reports a row that lacks a column the schema promises.
	ShapeError struct {
		Row   int
		Field string
	}
)

func (e *UpstreamError) Error() string {
	return e.Body
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed XML response: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row %d is missing field %q", e.Row, e.Field)
}
