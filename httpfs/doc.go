// Package httpfs is a small HTTP/1.1 file server that reads requests
// straight off TCP connections and serves or stores files under a root
// directory.
//
// Each accepted connection carries exactly one request. The request is
// parsed byte by byte, its path is flattened so it can never leave the
// root, and GET, HEAD and POST are dispatched to the filesystem. Every
// response declares Connection: close. Parse failures become 4xx/5xx
// responses; any failure after parsing becomes a plaintext 500.
//
// Quick start:
//
//	s := &httpfs.Server{Addr: "127.0.0.1:8080", Root: "./public"}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
//
// Then:
//
//	curl http://127.0.0.1:8080/             # plaintext listing
//	curl -d hello http://127.0.0.1:8080/a/b # creates a/b
//	curl http://127.0.0.1:8080/a/b?download # Content-Disposition: attachment
package httpfs
