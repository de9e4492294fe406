package httpfs

import (
	"strconv"

	"dqx0.com/go/httpfs/httpfs/internal/http1"
)

// Response is a fully buffered response. Body is nil for responses that
// carry no body, such as HEAD.
type Response struct {
	Proto      string
	StatusCode int
	Header     Header
	Body       []byte
}

// Status returns the status code with its reason phrase, e.g. "200 OK".
func (r *Response) Status() string { return http1.StatusLabel(r.StatusCode) }

// newResponse returns a response with Content-Length, Content-Type and
// Connection: close set, in that order.
func newResponse(status int, contentType string, body []byte) *Response {
	return &Response{
		Proto:      "HTTP/1.1",
		StatusCode: status,
		Header: Header{
			{Name: "Content-Length", Value: strconv.Itoa(len(body))},
			{Name: "Content-Type", Value: contentType},
			{Name: "Connection", Value: "close"},
		},
		Body: body,
	}
}

func textResponse(status int, msg string) *Response {
	return newResponse(status, "text/plain", []byte(msg))
}
