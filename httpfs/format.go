package httpfs

import (
	"html"
	"net/url"
	"sort"
	"strings"
)

// ListingFormat selects how directory listings are rendered.
type ListingFormat int

const (
	ListingPlain ListingFormat = iota
	ListingHTML
)

// Render sorts entries and renders them, returning the body and its
// content type.
func (f ListingFormat) Render(entries []DirEntry) ([]byte, string) {
	SortEntries(entries)
	if f == ListingHTML {
		return FormatHTML(entries), "text/html"
	}
	return FormatPlaintext(entries), "text/plain"
}

// SortEntries orders directories before files, then by name.
func SortEntries(entries []DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
}

// FormatPlaintext renders one "name/ [dir]" or "name [mime]" line per entry.
func FormatPlaintext(entries []DirEntry) []byte {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			lines = append(lines, e.Name+"/ [dir]")
		} else {
			lines = append(lines, e.Name+" ["+e.MIME+"]")
		}
	}
	return []byte(strings.Join(lines, "\n"))
}

// FormatHTML renders entries as a list of links.
func FormatHTML(entries []DirEntry) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<ul>\n")
	for _, e := range entries {
		href := url.PathEscape(e.Name)
		name := html.EscapeString(e.Name)
		if e.IsDir {
			href += "/"
			name += "/"
		}
		b.WriteString(`<li><a href="` + href + `">` + name + "</a></li>\n")
	}
	b.WriteString("</ul>\n")
	return []byte(b.String())
}
