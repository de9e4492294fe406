package httpfs

import (
	"path/filepath"
	"strings"
)

// Flatten resolves "." and ".." segments of a decoded request path and
// returns it relative, without a leading slash. A ".." with nothing left
// to pop is dropped, so the result never climbs above its base:
//
//	Flatten("/foo/./../test")    == "test"
//	Flatten("/../../etc/passwd") == "etc/passwd"
//
// Flatten never touches the filesystem.
func Flatten(p string) string {
	var stack []string
	for _, seg := range strings.FieldsFunc(p, isSeparator) {
		switch seg {
		case ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return strings.Join(stack, "/")
}

// Resolve joins the flattened form of p onto root.
func Resolve(root, p string) string {
	return filepath.Join(root, filepath.FromSlash(Flatten(p)))
}

func isSeparator(r rune) bool {
	return r == '/' || r == filepath.Separator
}
