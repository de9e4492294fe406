package httpfs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"dqx0.com/go/httpfs/httpfs/internal/http1"
	"dqx0.com/go/httpfs/internal/obs"
)

// Server serves files under Root. Each accepted connection handles
// exactly one request and is then closed.
//
// Limits and timeouts are off unless set: a zero MaxBodyBytes,
// MaxHeaderBytes, ReadTimeout or WriteTimeout means unbounded.
type Server struct {
	Addr string
	// Root is the served directory; defaults to ".".
	Root string
	// FS defaults to the host filesystem.
	FS      FileSystem
	Listing ListingFormat

	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxHeaderBytes int
	MaxBodyBytes   int64

	Console *Console
	Logger  obs.Logger
	Meter   obs.Meter

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l until it fails or Shutdown is called.
// An accept error is returned as is; after Shutdown the result is
// ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		l.Close()
		return ErrServerClosed
	}
	s.ln = l
	s.mu.Unlock()
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			s.logger().Logf(obs.Error, "accept: %v", err)
			return err
		}
		go s.serveConn(c)
	}
}

// Shutdown stops accepting connections. Connections already accepted
// run to completion.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	ln := s.ln
	s.mu.Unlock()
	if ln != nil {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}
	return ctx.Err()
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// serveConn runs one request/response cycle. Parse failures get their
// mapped status; anything failing later gets a 500 carrying the error
// text. If that cannot be written either, the connection is dropped.
func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	log := obs.WithField(s.logger(), "conn", newConnID())
	remote := c.RemoteAddr().String()
	defer func() {
		if p := recover(); p != nil {
			log.Logf(obs.Error, "panic serving %s: %v", remote, p)
		}
	}()
	s.Console.LogConnection(remote)

	if s.ReadTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	}
	bw := bufio.NewWriter(c)
	rr := &http1.Reader{BR: bufio.NewReader(c), MaxHeaderBytes: s.MaxHeaderBytes, MaxBodyBytes: s.MaxBodyBytes}
	pr, err := rr.ReadRequest()
	if err != nil {
		var pe *ParseError
		if !errors.As(err, &pe) {
			pe = &ParseError{Kind: MalformedRequest, Detail: err.Error()}
		}
		body := "Request parse error: " + pe.Error()
		log.Logf(obs.Warn, "%s: %s", remote, body)
		res := textResponse(pe.StatusCode(), body)
		s.Console.LogResponse(res)
		s.record("", res)
		if err := s.write(c, bw, res); err != nil {
			log.Logf(obs.Error, "writing %d response: %v", res.StatusCode, err)
		}
		return
	}

	req, err := s.serve(c, bw, pr, remote)
	if err != nil {
		log.Logf(obs.Error, "%s %s: %v", pr.Method, pr.RequestURI, err)
		if req == nil {
			// The target did not decode; log what was sent.
			req = &Request{Method: pr.Method, RequestURI: pr.RequestURI, Proto: pr.Proto, Header: pr.Header, RemoteAddr: remote}
		}
		res := textResponse(500, err.Error())
		s.Console.LogShort(req, res)
		s.Console.LogResponse(res)
		s.record(pr.Method, res)
		if err := s.write(c, bw, res); err != nil {
			log.Logf(obs.Error, "writing 500 response: %v", err)
		}
	}
}

// serve decodes and dispatches pr. The returned Request is nil when the
// target could not be decoded.
func (s *Server) serve(c net.Conn, bw *bufio.Writer, pr *http1.ParsedRequest, remote string) (*Request, error) {
	req, err := newRequest(pr, remote)
	if err != nil {
		return nil, err
	}
	s.Console.LogRequest(req)

	res, err := s.dispatch(req)
	if err != nil {
		return req, err
	}

	s.Console.LogShort(req, res)
	s.Console.LogResponse(res)
	s.record(req.Method, res)
	if err := s.write(c, bw, res); err != nil {
		return req, fmt.Errorf("writing response: %w", err)
	}
	return req, nil
}

// dispatch resolves the request path under Root and runs the handler
// for the method.
func (s *Server) dispatch(req *Request) (*Response, error) {
	return s.handler(req.Method).ServeFile(req, Resolve(s.root(), req.Path()))
}

func (s *Server) write(c net.Conn, bw *bufio.Writer, res *Response) error {
	if s.WriteTimeout > 0 {
		_ = c.SetWriteDeadline(time.Now().Add(s.WriteTimeout))
	}
	return http1.WriteResponse(bw, res.Proto, res.StatusCode, res.Header, res.Body)
}

func (s *Server) record(method string, res *Response) {
	m := s.meter()
	m.Counter("httpfs_requests_total", 1,
		obs.Label{Key: "method", Value: method},
		obs.Label{Key: "status", Value: strconv.Itoa(res.StatusCode)},
	)
	m.Histogram("httpfs_response_body_bytes", float64(len(res.Body)))
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}

func (s *Server) logger() obs.Logger {
	if s.Logger == nil {
		return obs.NopLogger{}
	}
	return s.Logger
}

func (s *Server) fs() FileSystem {
	if s.FS == nil {
		return OSFileSystem()
	}
	return s.FS
}

func (s *Server) root() string {
	if s.Root == "" {
		return "."
	}
	return s.Root
}
