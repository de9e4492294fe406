package http1

import "fmt"

// Kind classifies why a request could not be parsed.
type Kind int

const (
	MalformedRequest Kind = iota + 1
	UnsupportedMethod
	UnsupportedVersion
	BodyNotAllowed
	EndOfStream
	LengthRequired
	PayloadTooLarge
)

func (k Kind) String() string {
	switch k {
	case MalformedRequest:
		return "MalformedRequest"
	case UnsupportedMethod:
		return "UnsupportedMethod"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case BodyNotAllowed:
		return "BodyNotAllowed"
	case EndOfStream:
		return "EndOfStream"
	case LengthRequired:
		return "LengthRequired"
	case PayloadTooLarge:
		return "PayloadTooLarge"
	default:
		return "Unknown"
	}
}

// StatusCode maps a parse failure kind to the HTTP status sent back.
func (k Kind) StatusCode() int {
	switch k {
	case UnsupportedMethod:
		return 501
	case UnsupportedVersion:
		return 505
	case LengthRequired:
		return 411
	case PayloadTooLarge:
		return 413
	default:
		return 400
	}
}

// ParseError is the only error type ReadRequest returns. Lower level
// failures (I/O, bad integers, bad header tokens) are folded into
// MalformedRequest with their message kept in Detail.
type ParseError struct {
	Kind Kind
	// Detail holds the diagnostic for MalformedRequest and the offending
	// token for UnsupportedMethod and UnsupportedVersion.
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MalformedRequest:
		return fmt.Sprintf("Request was malformed and could not be parsed: '%s'", e.Detail)
	case UnsupportedMethod:
		return fmt.Sprintf("Method not supported: '%s'", e.Detail)
	case UnsupportedVersion:
		return fmt.Sprintf("Version not supported: '%s'", e.Detail)
	case BodyNotAllowed:
		return "Body not supported for this method"
	case EndOfStream:
		return "End of stream"
	case LengthRequired:
		return "Content-Length header required"
	case PayloadTooLarge:
		return "Payload too large"
	default:
		return "Unknown parse error"
	}
}

// StatusCode returns the status code the failure maps to.
func (e *ParseError) StatusCode() int { return e.Kind.StatusCode() }

func malformed(format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: MalformedRequest, Detail: fmt.Sprintf(format, args...)}
}

// asParseError normalizes any error into a *ParseError.
func asParseError(err error) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return &ParseError{Kind: MalformedRequest, Detail: err.Error()}
}

// StatusText returns the reason phrase for the status codes this server sends.
func StatusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 301:
		return "Moved Permanently"
	case 302:
		return "Found"
	case 304:
		return "Not Modified"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 405:
		return "Method Not Allowed"
	case 411:
		return "Length Required"
	case 413:
		return "Payload Too Large"
	case 500:
		return "Internal Server Error"
	case 501:
		return "Not Implemented"
	case 505:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}
