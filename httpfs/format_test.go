package httpfs

import (
	"strings"
	"testing"
)

func TestSortEntries(t *testing.T) {
	entries := []DirEntry{
		{Name: "b.txt"},
		{Name: "z", IsDir: true},
		{Name: "a.txt"},
		{Name: "c", IsDir: true},
	}
	SortEntries(entries)
	want := []string{"c", "z", "a.txt", "b.txt"}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Fatalf("order=%v", entries)
		}
	}
}

func TestFormatPlaintext(t *testing.T) {
	got := string(FormatPlaintext([]DirEntry{
		{Name: "docs", IsDir: true},
		{Name: "index.html", MIME: "text/html"},
	}))
	if got != "docs/ [dir]\nindex.html [text/html]" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPlaintext(nil); len(got) != 0 {
		t.Fatalf("empty listing=%q", got)
	}
}

func TestListingFormat_Render(t *testing.T) {
	entries := []DirEntry{{Name: "<x>.png", MIME: "image/png"}, {Name: "my dir", IsDir: true}}
	body, ct := ListingHTML.Render(entries)
	if ct != "text/html" {
		t.Fatalf("content type %q", ct)
	}
	html := string(body)
	if strings.Contains(html, "<x>") {
		t.Fatalf("name not escaped: %s", html)
	}
	dir := strings.Index(html, `<a href="my%20dir/">my dir/</a>`)
	file := strings.Index(html, "&lt;x&gt;.png</a>")
	if dir < 0 || file < 0 || dir > file {
		t.Fatalf("unexpected listing: %s", html)
	}
	if _, ct := ListingPlain.Render(nil); ct != "text/plain" {
		t.Fatalf("content type %q", ct)
	}
}
