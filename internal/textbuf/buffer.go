// Package textbuf holds the editor's in-memory text and moves it to and from
// files as whole-file operations.
package textbuf

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// A Buffer is the full text being edited. Contents are kept as raw bytes so
// a load followed by a save reproduces the file exactly.
type Buffer struct {
	data     []byte
	path     string
	modified bool
}

func New() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Text() string {
	return string(b.data)
}

func (b *Buffer) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// Path is the file the buffer was last loaded from or saved to.
func (b *Buffer) Path() string {
	return b.path
}

func (b *Buffer) Modified() bool {
	return b.modified
}

func (b *Buffer) SetText(text string) {
	b.data = []byte(text)
	b.modified = true
}

func (b *Buffer) Append(text string) {
	b.data = append(b.data, text...)
	b.modified = true
}

func (b *Buffer) Clear() {
	b.data = nil
	b.modified = true
}

// ReadFrom replaces the whole buffer with everything read from r. On error
// the buffer is left as it was.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var buf bytes.Buffer
	n, err := buf.ReadFrom(bufio.NewReader(r))
	if err != nil {
		return n, errors.Wrap(err, "read text")
	}
	b.data = buf.Bytes()
	b.modified = false
	return n, nil
}

func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	n, err := bw.Write(b.data)
	if err != nil {
		return int64(n), errors.Wrap(err, "write text")
	}
	if err := bw.Flush(); err != nil {
		return int64(n), errors.Wrap(err, "flush text")
	}
	return int64(n), nil
}

func (b *Buffer) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	if _, err := b.ReadFrom(f); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	b.path = path
	return nil
}

// Save truncates path and writes the whole buffer to it. A failure part way
// through can leave a truncated file behind.
func (b *Buffer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "save %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}

	b.path = path
	b.modified = false
	return nil
}
