package httpfs

import (
	"errors"

	"dqx0.com/go/httpfs/httpfs/internal/http1"
)

var (
	ErrServerClosed     = errors.New("httpfs: server closed")
	ErrBadRequestTarget = errors.New("httpfs: bad request target")
)

// ParseError describes a request that could not be parsed. Its
// StatusCode method gives the status sent back to the client.
type ParseError = http1.ParseError

// ParseErrorKind classifies a ParseError.
type ParseErrorKind = http1.Kind

const (
	MalformedRequest   = http1.MalformedRequest
	UnsupportedMethod  = http1.UnsupportedMethod
	UnsupportedVersion = http1.UnsupportedVersion
	BodyNotAllowed     = http1.BodyNotAllowed
	EndOfStream        = http1.EndOfStream
	LengthRequired     = http1.LengthRequired
	PayloadTooLarge    = http1.PayloadTooLarge
)
