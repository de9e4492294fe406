package httpfs

import (
	"fmt"
	"net/url"
	"strings"

	"dqx0.com/go/httpfs/httpfs/internal/http1"
)

// Request represents a parsed HTTP request.
//
// Body is nil when the request carried no Content-Length or chunked
// body. ContentLength is -1 for a chunked body.
type Request struct {
	Method        string
	URL           *url.URL
	RequestURI    string
	Proto         string
	Header        Header
	Body          []byte
	ContentLength int64
	RemoteAddr    string
}

// newRequest builds a Request from the wire form. URL.Path holds the
// percent-decoded path; a target that does not decode is an error.
func newRequest(pr *http1.ParsedRequest, remote string) (*Request, error) {
	var (
		u   *url.URL
		err error
	)
	if strings.HasPrefix(pr.RequestURI, "http://") || strings.HasPrefix(pr.RequestURI, "https://") {
		u, err = url.Parse(pr.RequestURI)
	} else {
		u, err = url.ParseRequestURI(pr.RequestURI)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadRequestTarget, pr.RequestURI, err)
	}
	return &Request{
		Method:        pr.Method,
		URL:           u,
		RequestURI:    pr.RequestURI,
		Proto:         pr.Proto,
		Header:        pr.Header,
		Body:          pr.Body,
		ContentLength: pr.ContentLength,
		RemoteAddr:    remote,
	}, nil
}

// Path returns the decoded path of the request target.
func (r *Request) Path() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.Path
}

// HasQuery reports whether the query string contains key, with or
// without a value.
func (r *Request) HasQuery(key string) bool {
	if r.URL == nil {
		return false
	}
	q, _ := url.ParseQuery(r.URL.RawQuery)
	_, ok := q[key]
	return ok
}
