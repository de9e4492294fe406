package http1

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParsedRequest is a minimal representation parsed from the wire.
type ParsedRequest struct {
	Method     string
	RequestURI string
	Proto      string
	Header     Header
	// ContentLength is the declared Content-Length, -1 for a chunked
	// body and 0 when neither was sent.
	ContentLength int64
	// Body is nil when the request carried no framed body. A chunked
	// body that is empty yields a non-nil empty slice.
	Body []byte
}

var (
	methods  = []string{"GET", "HEAD", "POST", "PUT", "DELETE"}
	versions = []string{"HTTP/1.0", "HTTP/1.1"}

	errLineTooLong = errors.New("http1: line too long")
)

// Reader parses exactly one request from BR.
type Reader struct {
	BR *bufio.Reader
	// MaxHeaderBytes bounds a single request or header line. Zero
	// means unlimited.
	MaxHeaderBytes int
	// MaxBodyBytes bounds the body; exceeding it yields PayloadTooLarge.
	// Zero means unlimited.
	MaxBodyBytes int64
}

// ReadRequest reads the request line, the headers and the framed body.
// Every failure is returned as a *ParseError.
func (r *Reader) ReadRequest() (*ParsedRequest, error) {
	pr, err := r.readRequest()
	if err != nil {
		return nil, asParseError(err)
	}
	return pr, nil
}

func (r *Reader) readRequest() (*ParsedRequest, error) {
	line, err := r.readLine()
	if err == io.EOF {
		return nil, &ParseError{Kind: EndOfStream}
	}
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return nil, malformed("Method missing")
	}
	method := fields[0]
	if !contains(methods, method) {
		return nil, &ParseError{Kind: UnsupportedMethod, Detail: method}
	}
	if len(fields) < 2 {
		return nil, malformed("URI missing")
	}
	uri := fields[1]
	if len(fields) < 3 {
		return nil, malformed("Version missing")
	}
	proto := fields[2]
	if !contains(versions, proto) {
		return nil, &ParseError{Kind: UnsupportedVersion, Detail: proto}
	}

	var (
		hdr           Header
		contentLength int64
		chunked       bool
	)
	for {
		line, err := r.readLine()
		if err == io.EOF {
			return nil, &ParseError{Kind: EndOfStream}
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		f, err := parseHeader(line)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(f.Name, "Content-Length") {
			if method == "GET" {
				return nil, &ParseError{Kind: BodyNotAllowed}
			}
			n, err := strconv.ParseUint(f.Value, 10, 64)
			if err != nil || n > math.MaxInt64 {
				return nil, malformed("Content-Length is not a number")
			}
			contentLength = int64(n)
		}
		if strings.EqualFold(f.Name, "Transfer-Encoding") && strings.Contains(strings.ToLower(f.Value), "chunked") {
			chunked = true
		}
		hdr = append(hdr, f)
	}

	if method == "POST" && !hdr.Has("Content-Length") && !hdr.Has("Transfer-Encoding") {
		return nil, &ParseError{Kind: LengthRequired}
	}

	var body []byte
	switch {
	case chunked:
		body, err = readChunked(r.BR, r.MaxBodyBytes)
		if err != nil {
			return nil, err
		}
		contentLength = -1
	case contentLength > 0:
		body, err = r.readBody(contentLength)
		if err != nil {
			return nil, err
		}
	}
	return &ParsedRequest{
		Method:        method,
		RequestURI:    uri,
		Proto:         proto,
		Header:        hdr,
		ContentLength: contentLength,
		Body:          body,
	}, nil
}

func (r *Reader) readBody(n int64) ([]byte, error) {
	if r.MaxBodyBytes > 0 && n > r.MaxBodyBytes {
		return nil, &ParseError{Kind: PayloadTooLarge}
	}
	var buf bytes.Buffer
	if n < 64<<10 {
		buf.Grow(int(n))
	}
	if _, err := io.CopyN(&buf, r.BR, n); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// readLine reads up to and including '\n' and returns the line without
// its CRLF or LF terminator. io.EOF is returned only when the stream
// ended before any byte of the line; an unterminated last line is
// returned as-is.
func (r *Reader) readLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := r.BR.ReadByte()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(b)
		if r.MaxHeaderBytes > 0 && sb.Len() > r.MaxHeaderBytes {
			return "", errLineTooLong
		}
	}
	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// parseHeader splits a header line on the first ": ".
func parseHeader(line string) (Field, error) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	name, value, ok := strings.Cut(line, ": ")
	if !ok {
		return Field{}, malformed("Header value missing: '%s'", line)
	}
	if !validToken(name) {
		return Field{}, malformed("Invalid header name: '%s'", line)
	}
	if !validHeaderValue(value) {
		return Field{}, malformed("Invalid header value: '%s'", line)
	}
	return Field{Name: name, Value: value}, nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
