package sferror

import "net/http"

// An SFError represents the error format rendered by the server.
type SFError struct {
	HTTPCode int    `json:"-"`
	Message  string `json:"error"`
}

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if sferr, ok := err.(*SFError); ok && sferr.HTTPCode != 0 {
		return sferr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new SFError with the given code and message.
func New(code int, message string) *SFError {
	return &SFError{HTTPCode: code, Message: message}
}

// Error implements error interface.
func (e *SFError) Error() string {
	return e.Message
}
