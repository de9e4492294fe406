package httpfs

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"dqx0.com/go/httpfs/httpfs/internal/http1"
)

// Verbosity levels understood by Console.
const (
	Verbose     = 1
	VeryVerbose = 2
)

// Console prints request/response summaries for the operator. It never
// changes what is written to the socket. A nil Console prints nothing.
type Console struct {
	Out       io.Writer
	Verbosity int
	// Color enables ANSI styling regardless of whether Out is a terminal.
	Color bool
}

func (c *Console) enabled() bool { return c != nil && c.Out != nil }

func (c *Console) paint(attrs ...color.Attribute) func(string) string {
	if !c.Color {
		return nil
	}
	p := color.New(attrs...)
	p.EnableColor()
	return func(s string) string { return p.Sprint(s) }
}

func (c *Console) text(attrs []color.Attribute, s string) string {
	if f := c.paint(attrs...); f != nil {
		return f(s)
	}
	return s
}

// LogConnection notes a new connection at Verbose and above.
func (c *Console) LogConnection(addr string) {
	if !c.enabled() || c.Verbosity < Verbose {
		return
	}
	fmt.Fprintf(c.Out, "Connection from %s\n", c.text([]color.Attribute{color.FgHiYellow}, addr))
}

// LogShort prints "METHOD PATH → STATUS CONTENT-TYPE". It is always on.
func (c *Console) LogShort(req *Request, res *Response) {
	if !c.enabled() {
		return
	}
	ct := res.Header.Get("Content-Type")
	if ct == "" {
		ct = "<unknown>"
	}
	// A target that failed to decode is shown raw.
	path := req.Path()
	if req.URL == nil {
		path = req.RequestURI
	}
	fmt.Fprintf(c.Out, "%s %s → %s %s\n",
		c.text(methodColor(req.Method), req.Method),
		c.text([]color.Attribute{color.FgCyan}, path),
		c.text(statusColor(res.StatusCode), res.Status()),
		c.text([]color.Attribute{color.FgHiBlack}, ct),
	)
}

// LogRequest prints the full request at VeryVerbose.
func (c *Console) LogRequest(req *Request) {
	if !c.enabled() || c.Verbosity < VeryVerbose {
		return
	}
	st := &http1.Styles{
		Method:      c.paint(color.FgGreen),
		Target:      c.paint(color.FgBlue),
		Version:     c.paint(color.FgHiBlack),
		HeaderName:  c.paint(color.FgCyan),
		HeaderValue: c.paint(color.FgMagenta),
	}
	head := http1.FormatRequest(req.Method, req.RequestURI, req.Proto, req.Header, st)
	fmt.Fprintf(c.Out, "%s%s", head, displayBody(req.Body))
}

// LogResponse prints the full response at VeryVerbose.
func (c *Console) LogResponse(res *Response) {
	if !c.enabled() || c.Verbosity < VeryVerbose {
		return
	}
	st := &http1.Styles{
		Version:     c.paint(color.FgHiBlack),
		Status:      c.paint(color.FgGreen),
		HeaderName:  c.paint(color.FgCyan),
		HeaderValue: c.paint(color.FgMagenta),
	}
	head := http1.FormatResponse(res.Proto, res.StatusCode, res.Header, st)
	fmt.Fprintf(c.Out, "%s%s", head, displayBody(res.Body))
}

func displayBody(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if !utf8.Valid(b) {
		return fmt.Sprintf("[Invalid UTF-8, %s]\n\n", humanize.Bytes(uint64(len(b))))
	}
	return string(b) + "\n\n"
}

func methodColor(m string) []color.Attribute {
	switch m {
	case "GET":
		return []color.Attribute{color.FgGreen}
	case "POST":
		return []color.Attribute{color.FgYellow}
	case "PUT":
		return []color.Attribute{color.FgBlue}
	case "DELETE":
		return []color.Attribute{color.FgRed}
	case "HEAD":
		return []color.Attribute{color.FgHiBlack}
	default:
		return nil
	}
}

func statusColor(code int) []color.Attribute {
	switch {
	case code >= 500:
		return []color.Attribute{color.FgHiRed}
	case code >= 400:
		return []color.Attribute{color.FgRed}
	case code >= 300:
		return []color.Attribute{color.FgYellow}
	case code >= 200:
		return []color.Attribute{color.FgGreen}
	default:
		return nil
	}
}
