package httpfs

import (
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DirEntry is one entry of a directory listing.
type DirEntry struct {
	Name  string
	IsDir bool
	// MIME is the guessed media type; empty for directories.
	MIME string
}

// FileSystem is everything the method handlers need from storage. Paths
// are already resolved under the server root.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]DirEntry, error)
	IsDir(name string) bool
	WriteFile(name string, data []byte) error
	// MkdirAll creates name and any missing parents.
	MkdirAll(name string) error
}

// NewFileSystem returns a FileSystem backed by fs.
func NewFileSystem(fs afero.Fs) FileSystem {
	return aferoFS{fs: fs}
}

// OSFileSystem returns a FileSystem over the host filesystem.
func OSFileSystem() FileSystem {
	return NewFileSystem(afero.NewOsFs())
}

type aferoFS struct {
	fs afero.Fs
}

func (a aferoFS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.fs, name)
}

func (a aferoFS) ReadDir(name string) ([]DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]DirEntry, 0, len(infos))
	for _, fi := range infos {
		e := DirEntry{Name: fi.Name(), IsDir: fi.IsDir()}
		if !e.IsDir {
			e.MIME = GuessMIME(e.Name)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (a aferoFS) IsDir(name string) bool {
	ok, err := afero.IsDir(a.fs, name)
	return err == nil && ok
}

func (a aferoFS) WriteFile(name string, data []byte) error {
	return afero.WriteFile(a.fs, name, data, 0o644)
}

func (a aferoFS) MkdirAll(name string) error {
	return a.fs.MkdirAll(name, os.ModePerm)
}

// GuessMIME guesses a media type from the file extension, without
// parameters. Unknown extensions are application/octet-stream.
func GuessMIME(name string) string {
	t := mime.TypeByExtension(filepath.Ext(name))
	if t == "" {
		return "application/octet-stream"
	}
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return t
}
