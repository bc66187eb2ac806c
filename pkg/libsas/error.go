package libsas

import (
	"github.com/pkg/errors"
)

// A Kind classifies the failures returned by a Client.
type Kind int

const (
	// KindValidation is a missing parameter or a malformed payload detected before any request.
	KindValidation Kind = iota + 1
	// KindTransport is a failure of the underlying HTTP client.
	KindTransport
	// KindServer is a non-2xx response carrying a parseable error envelope.
	KindServer
	// KindMalformedResponse is a response whose body could not be parsed.
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// An Error is returned by all the Client operations.
type Error struct {
	Kind       Kind
	Endpoint   string // Empty for validation errors.
	StatusCode int    // HTTP status code when a response has been received.
	Message    string
	Err        error // Underlying error, if any.
}

func validationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// Error implements error interface.
// Transport errors keep the text of the underlying error.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind returns true if err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusCode returns the HTTP status code carried by err or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
