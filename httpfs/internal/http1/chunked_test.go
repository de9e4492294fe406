package http1

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func decodeChunked(t *testing.T, s string) (string, error) {
	t.Helper()
	b, err := readChunked(bufio.NewReader(strings.NewReader(s)), 0)
	return string(b), err
}

func TestReadChunked(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4\r\nWiki\r\n0\r\n\r\n", "Wiki"},
		{"6\r\nFooBar\r\n0\r\n\r\n", "FooBar"},
		{"d\r\nThisIsChunked\r\n18\r\nAllYourBaseAreBelongToUs\r\n0\r\n\r\n", "ThisIsChunkedAllYourBaseAreBelongToUs"},
		{"4;name=value\r\nWiki\r\n0\r\n\r\n", "Wiki"},
		{"A\r\n0123456789\r\n0\n", "0123456789"},
		{"0\r\n\r\n", ""},
	}
	for _, tt := range tests {
		got, err := decodeChunked(t, tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadChunked_EmptyIsNotNil(t *testing.T) {
	b, err := readChunked(bufio.NewReader(strings.NewReader("0\r\n\r\n")), 0)
	if err != nil {
		t.Fatal(err)
	}
	if b == nil {
		t.Fatal("empty chunked body should be non-nil")
	}
}

func TestReadChunked_TrailersLeftUnread(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("1\r\nx\r\n0\r\nX-Trailer: y\r\n\r\n"))
	if _, err := readChunked(br, 0); err != nil {
		t.Fatal(err)
	}
	rest, _ := br.ReadString('\n')
	if rest != "X-Trailer: y\r\n" {
		t.Fatalf("rest=%q", rest)
	}
}

func TestReadChunked_Errors(t *testing.T) {
	for _, in := range []string{
		"",
		"\r\n",
		"g\r\nabc\r\n",
		"-1\r\n\r\n",
		"+4\r\nWiki\r\n0\r\n\r\n",
		"8000000000000000\r\n",
		"5\r\nab",
	} {
		if got, err := decodeChunked(t, in); err == nil {
			t.Fatalf("%q: expected error, got %q", in, got)
		}
	}
}

func TestReadChunked_SignedSizeIsMalformed(t *testing.T) {
	_, err := readChunked(bufio.NewReader(strings.NewReader("+4\r\nWiki\r\n0\r\n\r\n")), 0)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != MalformedRequest {
		t.Fatalf("err=%v, want malformed request", err)
	}
}
