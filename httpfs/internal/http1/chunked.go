package http1

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// readChunked reassembles a Transfer-Encoding: chunked body. It stops
// right after the size line of the terminal zero-size chunk; trailers
// are left unread since the connection is closed after one request.
// A positive limit bounds the reassembled body.
func readChunked(br *bufio.Reader, limit int64) ([]byte, error) {
	body := []byte{}
	for {
		size, err := readChunkSize(br)
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return body, nil
		}
		if limit > 0 && size > limit-int64(len(body)) {
			return nil, &ParseError{Kind: PayloadTooLarge}
		}
		buf := bytes.NewBuffer(body)
		if _, err := io.CopyN(buf, br, size); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		body = buf.Bytes()
		// CRLF after the chunk data
		if err := discardLine(br); err != nil {
			return nil, err
		}
	}
}

// readChunkSize reads "<hex>[;ext]\r\n" and returns the size.
func readChunkSize(br *bufio.Reader) (int64, error) {
	var digits []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == '\n' {
			break
		}
		if b == ';' || b == '\r' {
			// Extensions are not recognized and are skipped.
			if err := discardLine(br); err != nil {
				return 0, err
			}
			break
		}
		digits = append(digits, b)
	}
	// Unsigned and 63 bits wide: no sign is accepted and the size fits int64.
	n, err := strconv.ParseUint(string(digits), 16, 63)
	if err != nil {
		return 0, malformed("invalid chunk size %q", digits)
	}
	return int64(n), nil
}

func discardLine(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}
