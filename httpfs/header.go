package httpfs

import "dqx0.com/go/httpfs/httpfs/internal/http1"

// Header is an ordered multimap of header fields with case-insensitive
// names. Duplicates are kept in arrival order.
type Header = http1.Header

// Field is one header line.
type Field = http1.Field
