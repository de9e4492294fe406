package http1

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Styles decorates message parts for console display. Nil funcs leave
// the text untouched, so a nil or zero Styles yields the wire format.
type Styles struct {
	Method      func(string) string
	Target      func(string) string
	Version     func(string) string
	Status      func(string) string
	HeaderName  func(string) string
	HeaderValue func(string) string
}

var plain = &Styles{}

func apply(f func(string) string, v string) string {
	if f == nil {
		return v
	}
	return f(v)
}

// StatusLabel renders "200 OK", or just the code for unknown statuses.
func StatusLabel(status int) string {
	code := strconv.Itoa(status)
	if reason := StatusText(status); reason != "" {
		return code + " " + reason
	}
	return code
}

// FormatResponse renders the status line, headers and blank line of a
// response. Connection: close is appended when hdr has no Connection
// field, since no connection is ever reused.
func FormatResponse(proto string, status int, hdr Header, st *Styles) string {
	if st == nil {
		st = plain
	}
	var b strings.Builder
	b.WriteString(apply(st.Version, proto))
	b.WriteByte(' ')
	b.WriteString(apply(st.Status, StatusLabel(status)))
	b.WriteString("\r\n")
	writeFields(&b, hdr, st)
	if !hdr.Has("Connection") {
		writeFields(&b, Header{{Name: "Connection", Value: "close"}}, st)
	}
	b.WriteString("\r\n")
	return b.String()
}

// FormatRequest renders the request line, headers and blank line of a
// request for logging.
func FormatRequest(method, target, proto string, hdr Header, st *Styles) string {
	if st == nil {
		st = plain
	}
	var b strings.Builder
	b.WriteString(apply(st.Method, method))
	b.WriteByte(' ')
	b.WriteString(apply(st.Target, target))
	b.WriteByte(' ')
	b.WriteString(apply(st.Version, proto))
	b.WriteString("\r\n")
	writeFields(&b, hdr, st)
	b.WriteString("\r\n")
	return b.String()
}

func writeFields(b *strings.Builder, hdr Header, st *Styles) {
	for _, f := range hdr {
		b.WriteString(apply(st.HeaderName, f.Name))
		b.WriteString(": ")
		b.WriteString(apply(st.HeaderValue, sanitizeHeaderValue(f.Value)))
		b.WriteString("\r\n")
	}
}

// WriteResponse writes an unstyled response and flushes it. A nil body
// writes no body bytes.
func WriteResponse(w io.Writer, proto string, status int, hdr Header, body []byte) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	if _, err := bw.WriteString(FormatResponse(proto, status, hdr, nil)); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := bw.Write(body); err != nil {
			return err
		}
	}
	return bw.Flush()
}
