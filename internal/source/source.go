// Package source abstracts where validated byte streams come from.
package source

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Source yields the byte stream for one validation run. Open is called once
// per run; the engine closes the returned reader before the run finishes,
// so a partially consumed handle is never reused.
type Source interface {
	// Open yields a fresh line-oriented stream.
	Open() (io.ReadCloser, error)
	// String names the source in logs and reports.
	String() string
}

// File is a Source backed by a file on disk.
type File struct {
	Path string
}

// NewFile creates a File source for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Open opens the underlying file.
func (f *File) Open() (io.ReadCloser, error) {
	rc, err := os.Open(f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", f.Path)
	}
	return rc, nil
}

func (f *File) String() string { return f.Path }

// Reader is an in-memory Source, used in tests and for small buffers.
type Reader struct {
	Name string
	Data string
}

// NewReader creates a Reader source named name with the given contents.
func NewReader(name, data string) *Reader {
	return &Reader{Name: name, Data: data}
}

// Open yields a fresh reader over the buffered data.
func (r *Reader) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(r.Data)), nil
}

func (r *Reader) String() string { return r.Name }

// Stdin streams the process's standard input. Close is a no-op so the
// engine's scoped release does not close os.Stdin itself.
type Stdin struct{}

// Open yields standard input behind a no-op closer.
func (s *Stdin) Open() (io.ReadCloser, error) {
	return io.NopCloser(os.Stdin), nil
}

func (s *Stdin) String() string { return "stdin" }
