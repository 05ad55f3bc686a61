package adapter

import "errors"

var (
	// ErrConversionFailed matches every [*ServerError].
	ErrConversionFailed = errors.New("conversion failed")
	// ErrTransport matches every [*TransportError].
	ErrTransport = errors.New("transport error")
	// ErrInvalidEndpoint is returned by the constructor when the endpoint
	// cannot be resolved to an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid conversion endpoint")
)

// ServerError is a non-2xx answer from the conversion backend.
type ServerError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Detail is the server-provided message, or
	// [models.FallbackErrorMessage] when the body carried none.
	Detail string
}

// Error returns the detail message unchanged so it can be shown to the user
// as is.
func (e *ServerError) Error() string {
	return e.Detail
}

// Is reports whether target is [ErrConversionFailed].
func (e *ServerError) Is(target error) bool {
	return target == ErrConversionFailed
}

// TransportError wraps a failure that kept the response from arriving or
// being read: connection errors, timeouts, cancelled contexts.
type TransportError struct {
	Err error
}

// Error returns the underlying error text verbatim.
func (e *TransportError) Error() string {
	if e.Err == nil {
		return ErrTransport.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrTransport].
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func newTransportError(err error) error {
	return &TransportError{Err: err}
}
