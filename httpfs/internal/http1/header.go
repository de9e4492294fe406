package http1

import "strings"

// Field is a single header line as it arrived on the wire.
type Field struct {
	Name  string
	Value string
}

// Header is an ordered multimap of header fields. Names compare
// case-insensitively; duplicates and arrival order are preserved.
type Header []Field

// Get returns the first value for name, or "".
func (h Header) Get(name string) string {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Values returns every value for name in arrival order.
func (h Header) Values(name string) []string {
	var vv []string
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			vv = append(vv, f.Value)
		}
	}
	return vv
}

// Has reports whether a field named name is present.
func (h Header) Has(name string) bool {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// Add appends a field, keeping any existing ones.
func (h *Header) Add(name, value string) {
	*h = append(*h, Field{Name: name, Value: value})
}

// Set replaces every field named name with a single one. The new field
// takes the position of the first removed field, or goes last.
func (h *Header) Set(name, value string) {
	out := (*h)[:0]
	placed := false
	for _, f := range *h {
		if strings.EqualFold(f.Name, name) {
			if !placed {
				out = append(out, Field{Name: name, Value: value})
				placed = true
			}
			continue
		}
		out = append(out, f)
	}
	if !placed {
		out = append(out, Field{Name: name, Value: value})
	}
	*h = out
}

// Del removes every field named name.
func (h *Header) Del(name string) {
	out := (*h)[:0]
	for _, f := range *h {
		if !strings.EqualFold(f.Name, name) {
			out = append(out, f)
		}
	}
	*h = out
}

// Clone returns a copy that shares no storage with h.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	return append(Header(nil), h...)
}

// validToken reports whether k is an RFC 7230 token.
func validToken(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		switch c {
		case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
			continue
		default:
			return false
		}
	}
	return true
}

// validHeaderValue rejects control characters other than HTAB.
func validHeaderValue(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == 0x7f || (c < 0x20 && c != '\t') {
			return false
		}
	}
	return true
}

// sanitizeHeaderValue removes CR/LF and control chars except HTAB.
func sanitizeHeaderValue(v string) string {
	if validHeaderValue(v) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == 0x7f || (c < 0x20 && c != '\t') {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
