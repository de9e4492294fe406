package httpfs

import (
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"dqx0.com/go/httpfs/httpfs/internal/http1"
)

func memServer(t *testing.T, files map[string]string) (*Server, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(mem, name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &Server{Root: "/srv", FS: NewFileSystem(mem)}, mem
}

func mustRequest(t *testing.T, method, target string, body []byte) *Request {
	t.Helper()
	req, err := newRequest(&http1.ParsedRequest{Method: method, RequestURI: target, Proto: "HTTP/1.1", Body: body}, "test")
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func mustDispatch(t *testing.T, s *Server, req *Request) *Response {
	t.Helper()
	res, err := s.dispatch(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.RequestURI, err)
	}
	return res
}

func TestHandleGet_File(t *testing.T) {
	s, _ := memServer(t, map[string]string{"/srv/site/index.html": "<p>hi</p>"})
	res := mustDispatch(t, s, mustRequest(t, "GET", "/site/index.html", nil))
	if res.StatusCode != 200 || string(res.Body) != "<p>hi</p>" {
		t.Fatalf("status=%d body=%q", res.StatusCode, res.Body)
	}
	want := Header{
		{Name: "Content-Length", Value: "9"},
		{Name: "Content-Type", Value: "text/html"},
		{Name: "Content-Disposition", Value: "inline"},
		{Name: "Connection", Value: "close"},
	}
	for i := range want {
		if res.Header[i] != want[i] {
			t.Fatalf("header=%v", res.Header)
		}
	}
}

func TestHandleGet_OutsideRootNotVisible(t *testing.T) {
	s, _ := memServer(t, map[string]string{"/etc/passwd": "root:x:0:0"})
	res := mustDispatch(t, s, mustRequest(t, "GET", "/../../etc/passwd", nil))
	if res.StatusCode != 404 {
		t.Fatalf("status=%d body=%q", res.StatusCode, res.Body)
	}
	if string(res.Body) != "404: '/../../etc/passwd' not found!" {
		t.Fatalf("body=%q", res.Body)
	}
}

func TestHandleGet_Directory(t *testing.T) {
	s, mem := memServer(t, map[string]string{"/srv/b.png": "", "/srv/a.css": ""})
	if err := mem.MkdirAll("/srv/sub", 0o755); err != nil {
		t.Fatal(err)
	}
	res := mustDispatch(t, s, mustRequest(t, "GET", "/", nil))
	if res.StatusCode != 200 {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if got := string(res.Body); got != "sub/ [dir]\na.css [text/css]\nb.png [image/png]" {
		t.Fatalf("body=%q", got)
	}
	if res.Header.Get("Content-Length") != strconv.Itoa(len(res.Body)) {
		t.Fatalf("Content-Length=%q", res.Header.Get("Content-Length"))
	}
}

func TestHandleHead_KeepsLength(t *testing.T) {
	s, _ := memServer(t, map[string]string{"/srv/f.css": "body{}"})
	res := mustDispatch(t, s, mustRequest(t, "HEAD", "/f.css", nil))
	if res.Body != nil {
		t.Fatalf("body=%q", res.Body)
	}
	if res.Header.Get("Content-Length") != "6" || res.Header.Get("Content-Type") != "text/css" {
		t.Fatalf("header=%v", res.Header)
	}
}

func TestHandlePost(t *testing.T) {
	s, mem := memServer(t, nil)
	res := mustDispatch(t, s, mustRequest(t, "POST", "/deep/er/x.bin", []byte{0, 1, 2}))
	if res.StatusCode != 201 || string(res.Body) != "201: '/deep/er/x.bin' created!" {
		t.Fatalf("status=%d body=%q", res.StatusCode, res.Body)
	}
	b, err := afero.ReadFile(mem, "/srv/deep/er/x.bin")
	if err != nil || string(b) != "\x00\x01\x02" {
		t.Fatalf("stored %q, %v", b, err)
	}

	// No body writes an empty file.
	mustDispatch(t, s, mustRequest(t, "POST", "/empty", nil))
	if fi, err := mem.Stat("/srv/empty"); err != nil || fi.Size() != 0 {
		t.Fatalf("empty file: %v %v", fi, err)
	}
}

func TestHandlePost_Error(t *testing.T) {
	s, _ := memServer(t, nil)
	s.FS = NewFileSystem(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	_, err := s.dispatch(mustRequest(t, "POST", "/x", []byte("y")))
	if err == nil || !strings.Contains(err.Error(), "/x") {
		t.Fatalf("err=%v", err)
	}
}

func TestServer_HandlerPerMethod(t *testing.T) {
	s, _ := memServer(t, map[string]string{"/srv/a.txt": "abc"})
	for method, want := range map[string]int{"GET": 200, "HEAD": 200, "PUT": 501, "DELETE": 501} {
		res, err := s.handler(method).ServeFile(mustRequest(t, method, "/a.txt", nil), "/srv/a.txt")
		if err != nil || res.StatusCode != want {
			t.Fatalf("%s: res=%v err=%v, want %d", method, res, err, want)
		}
	}

	var seen string
	h := HandlerFunc(func(req *Request, path string) (*Response, error) {
		seen = path
		return textResponse(204, ""), nil
	})
	if res, _ := h.ServeFile(mustRequest(t, "GET", "/x", nil), "/srv/x"); res.StatusCode != 204 || seen != "/srv/x" {
		t.Fatalf("status=%d path=%q", res.StatusCode, seen)
	}
}

func TestHandleUnknown(t *testing.T) {
	res := handleUnknown()
	if res.StatusCode != 501 || string(res.Body) != "Unknown method!" {
		t.Fatalf("status=%d body=%q", res.StatusCode, res.Body)
	}
}

func TestNewRequest_BadTarget(t *testing.T) {
	_, err := newRequest(&http1.ParsedRequest{Method: "GET", RequestURI: "/%zz", Proto: "HTTP/1.1"}, "")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRequest_Query(t *testing.T) {
	req := mustRequest(t, "GET", "/a%20b.txt?x=1&download", nil)
	if req.Path() != "/a b.txt" {
		t.Fatalf("path=%q", req.Path())
	}
	if !req.HasQuery("download") || req.HasQuery("nope") {
		t.Fatal("query lookup wrong")
	}
	abs := mustRequest(t, "GET", "http://host/p?download=1", nil)
	if abs.Path() != "/p" || !abs.HasQuery("download") {
		t.Fatalf("absolute form: path=%q", abs.Path())
	}
}
