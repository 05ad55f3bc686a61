package client

import "errors"

// ErrConversionFailed is returned by a one-shot run whose submission failed.
// The failure message has already been printed.
var ErrConversionFailed = errors.New("conversion failed")
