package storage

import (
	"io"
	"os"
)

// Reader is a read-only, freely-seekable view over a file that tracks the
// absolute offset its next read begins at. Seeks on the reader never
// affect a Writer open on the same path, and vice versa — they hold
// independent file descriptors.
type Reader struct {
	file *os.File
	pos  int64
}

// OpenReader opens path read-only, positioned at offset 0.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{file: f}, nil
}

// Pos returns the absolute offset the next Read will start at.
func (r *Reader) Pos() int64 { return r.pos }

// SeekTo repositions the reader at an absolute offset.
func (r *Reader) SeekTo(offset int64) error {
	pos, err := r.file.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	r.pos = pos
	return nil
}

// ReadFull reads exactly len(buf) bytes, advancing Pos by the number of
// bytes actually read even on error (so a caller can tell how far it got
// on a short/truncated read). It returns io.EOF if zero bytes could be
// read, and io.ErrUnexpectedEOF if a nonzero but incomplete read occurred —
// the same two signals io.ReadFull itself produces.
func (r *Reader) ReadFull(buf []byte) (int, error) {
	n, err := io.ReadFull(r.file, buf)
	r.pos += int64(n)
	return n, err
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
