package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/minidb/kvs/internal/kverrors"
	"github.com/minidb/kvs/internal/record"
	"github.com/minidb/kvs/internal/storage"
)

// decodeAt seeks r to offset and decodes one full record, returning the
// decoded entry and its total on-disk size. io.EOF means a clean,
// zero-byte header read (end of log); io.ErrUnexpectedEOF means the record
// is cut short — either a truncated header (wrapped in
// kverrors.ErrHeaderDecode, so callers outside a replay/merge scan can
// errors.Is against it directly) or a body shorter than the header
// advertises — which is a cleanly truncated tail when it happens during a
// scan from offset 0; any other error is genuine corruption (a malformed
// kind byte or invalid UTF-8).
func decodeAt(r *storage.Reader, offset int64) (record.Entry, int64, error) {
	if err := r.SeekTo(offset); err != nil {
		return record.Entry{}, 0, err
	}

	header := make([]byte, record.HeaderSize)
	if _, err := r.ReadFull(header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return record.Entry{}, 0, fmt.Errorf("%w: %w", kverrors.ErrHeaderDecode, err)
		}
		return record.Entry{}, 0, err
	}

	h, err := record.DecodeHeader(header)
	if err != nil {
		return record.Entry{}, 0, err
	}

	body := make([]byte, h.KeyLen+h.ValueLen)
	if _, err := r.ReadFull(body); err != nil {
		if errors.Is(err, io.EOF) {
			// The header advertised body bytes and none follow it.
			err = io.ErrUnexpectedEOF
		}
		return record.Entry{}, 0, err
	}

	key := body[:h.KeyLen]
	value := body[h.KeyLen:]
	if err := record.ValidateUTF8(key, value); err != nil {
		return record.Entry{}, 0, err
	}

	size := int64(record.HeaderSize) + int64(h.KeyLen) + int64(h.ValueLen)
	entry := record.Entry{Kind: h.Kind, Key: string(key), Value: string(value)}
	return entry, size, nil
}

// decodeHeaderAt seeks r to offset and decodes only the fixed-size header,
// returning the total record size it describes. Used by the write path to
// learn a superseded record's size without reading its body.
func decodeHeaderAt(r *storage.Reader, offset int64) (int64, error) {
	if err := r.SeekTo(offset); err != nil {
		return 0, err
	}
	buf := make([]byte, record.HeaderSize)
	if _, err := r.ReadFull(buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: %w", kverrors.ErrHeaderDecode, err)
		}
		return 0, err
	}
	h, err := record.DecodeHeader(buf)
	if err != nil {
		return 0, err
	}
	return int64(record.HeaderSize) + int64(h.KeyLen) + int64(h.ValueLen), nil
}
