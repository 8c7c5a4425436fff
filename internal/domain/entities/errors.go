package entities

import "errors"

var (
	// ErrEmptyIdentifier is returned when no account identifier could be extracted from the input.
	ErrEmptyIdentifier = errors.New("no account identifier in input")

	// ErrTransport covers network, DNS, HTTP status and rate-limit failures.
	ErrTransport = errors.New("transport failure")

	// ErrShape is returned when a response is well-formed but misses required
	// fields or has the wrong structural type.
	ErrShape = errors.New("unexpected response shape")
)

// ErrorKind names the failure class of err for diagnostic logging.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyIdentifier):
		return "extraction"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrShape):
		return "shape"
	default:
		return "internal"
	}
}
