package storage

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_AppendTracksPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	w, err := OpenWriter(path)
	require.NoError(t, err)
	defer w.Close()

	require.Equal(t, int64(0), w.Pos())

	off1, err := w.Append([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, int64(0), off1)
	require.Equal(t, int64(5), w.Pos())

	off2, err := w.Append([]byte("world!"))
	require.NoError(t, err)
	require.Equal(t, int64(5), off2)
	require.Equal(t, int64(11), w.Pos())
}

func TestWriter_ReopenStartsAtEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	w, err := OpenWriter(path)
	require.NoError(t, err)
	_, err = w.Append([]byte("0123456789"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w2, err := OpenWriter(path)
	require.NoError(t, err)
	defer w2.Close()
	require.Equal(t, int64(10), w2.Pos())
}

func TestWriter_Truncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	w, err := OpenWriter(path)
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Append([]byte("0123456789"))
	require.NoError(t, err)

	require.NoError(t, w.Truncate(4))
	require.Equal(t, int64(4), w.Pos())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	buf := make([]byte, 4)
	_, err = r.ReadFull(buf)
	require.NoError(t, err)
	require.Equal(t, "0123", string(buf))
}

func TestReader_SeekAndReadFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	w, err := OpenWriter(path)
	require.NoError(t, err)
	_, err = w.Append([]byte("abcdefghij"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.SeekTo(5))
	buf := make([]byte, 3)
	n, err := r.ReadFull(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "fgh", string(buf))
	require.Equal(t, int64(8), r.Pos())
}

func TestReader_ReadFullShortAtEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	w, err := OpenWriter(path)
	require.NoError(t, err)
	_, err = w.Append([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	buf := make([]byte, 10)
	n, err := r.ReadFull(buf)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 3, n)
}

func TestReader_ReadFullCleanEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	w, err := OpenWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	buf := make([]byte, 10)
	n, err := r.ReadFull(buf)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 0, n)
}

func TestReaderAndWriter_Independent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	w, err := OpenWriter(path)
	require.NoError(t, err)
	defer w.Close()
	_, err = w.Append([]byte("0123456789"))
	require.NoError(t, err)

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.SeekTo(7))

	// Writer's position is unaffected by the reader's seek.
	require.Equal(t, int64(10), w.Pos())

	off, err := w.Append([]byte("X"))
	require.NoError(t, err)
	require.Equal(t, int64(10), off)
}
