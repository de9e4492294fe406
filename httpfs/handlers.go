package httpfs

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Handler answers a request whose target is already resolved to a path
// under the server root.
type Handler interface {
	ServeFile(req *Request, path string) (*Response, error)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(req *Request, path string) (*Response, error)

func (f HandlerFunc) ServeFile(req *Request, path string) (*Response, error) {
	return f(req, path)
}

// handler picks the Handler for method. Methods the parser accepts but
// nothing serves (PUT, DELETE) get a 501.
func (s *Server) handler(method string) Handler {
	switch method {
	case "GET":
		return HandlerFunc(s.handleGet)
	case "HEAD":
		return HandlerFunc(s.handleHead)
	case "POST":
		return HandlerFunc(s.handlePost)
	default:
		return HandlerFunc(func(*Request, string) (*Response, error) {
			return handleUnknown(), nil
		})
	}
}

// handleGet serves a file, or a listing when path is a directory.
// Unreadable paths are a 404; it never returns an error itself.
func (s *Server) handleGet(req *Request, path string) (*Response, error) {
	fs := s.fs()
	if fs.IsDir(path) {
		entries, err := fs.ReadDir(path)
		if err != nil {
			return notFound(req), nil
		}
		body, ct := s.Listing.Render(entries)
		return newResponse(200, ct, body), nil
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return notFound(req), nil
	}
	disposition := "inline"
	if req.HasQuery("download") {
		disposition = "attachment"
	}
	return &Response{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Header: Header{
			{Name: "Content-Length", Value: strconv.Itoa(len(data))},
			{Name: "Content-Type", Value: GuessMIME(path)},
			{Name: "Content-Disposition", Value: disposition},
			{Name: "Connection", Value: "close"},
		},
		Body: data,
	}, nil
}

// handleHead is GET without the body. Content-Length still reports the
// full size.
func (s *Server) handleHead(req *Request, path string) (*Response, error) {
	res, err := s.handleGet(req, path)
	if err != nil {
		return nil, err
	}
	res.Body = nil
	return res, nil
}

// handlePost creates any missing parent directories and writes the body
// to path, replacing an existing file.
func (s *Server) handlePost(req *Request, path string) (*Response, error) {
	fs := s.fs()
	if err := fs.MkdirAll(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating parents of %s: %w", req.Path(), err)
	}
	body := req.Body
	if body == nil {
		body = []byte{}
	}
	if err := fs.WriteFile(path, body); err != nil {
		return nil, fmt.Errorf("writing %s: %w", req.Path(), err)
	}
	return textResponse(201, fmt.Sprintf("201: '%s' created!", req.Path())), nil
}

func handleUnknown() *Response {
	return textResponse(501, "Unknown method!")
}

func notFound(req *Request) *Response {
	return textResponse(404, fmt.Sprintf("404: '%s' not found!", req.Path()))
}
