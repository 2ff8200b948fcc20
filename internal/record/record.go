// Package record implements the on-disk log entry format: a fixed-size
// header (two big-endian length fields and a one-byte kind) followed by
// the raw key and value bytes. The header is the sole delimiter between
// records in the log; there is no magic number, version, or checksum.
package record

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/minidb/kvs/internal/kverrors"
)

// Kind identifies what a record does to the index.
type Kind uint8

const (
	// Put is a live key-value write.
	Put Kind = 1
	// Del is a tombstone marking a key removed.
	Del Kind = 2
)

// lenWidth is the byte width of each length field in the header. Fixed at
// 8 so the format is portable across 32- and 64-bit machines, rather than
// using the host's native pointer width.
const lenWidth = 8

// HeaderSize is the fixed number of header bytes preceding every record's
// key and value bytes: key_len, value_len, kind.
const HeaderSize = lenWidth*2 + 1

// Entry is one self-describing log record.
type Entry struct {
	Kind  Kind
	Key   string
	Value string
}

// NewPut builds a live PUT entry.
func NewPut(key, value string) Entry {
	return Entry{Kind: Put, Key: key, Value: value}
}

// NewDel builds a tombstone DEL entry. DEL records carry no value.
func NewDel(key string) Entry {
	return Entry{Kind: Del, Key: key}
}

// Size returns the total encoded length of e: HeaderSize + len(key) + len(value).
func (e Entry) Size() int64 {
	return int64(HeaderSize + len(e.Key) + len(e.Value))
}

// Encode serializes e into a freshly allocated buffer of length e.Size().
func (e Entry) Encode() []byte {
	buf := make([]byte, e.Size())
	binary.BigEndian.PutUint64(buf[0:lenWidth], uint64(len(e.Key)))
	binary.BigEndian.PutUint64(buf[lenWidth:2*lenWidth], uint64(len(e.Value)))
	buf[2*lenWidth] = byte(e.Kind)
	copy(buf[HeaderSize:], e.Key)
	copy(buf[HeaderSize+len(e.Key):], e.Value)
	return buf
}

// Header is the decoded fixed-size prefix of a record.
type Header struct {
	KeyLen   uint64
	ValueLen uint64
	Kind     Kind
}

// DecodeHeader parses exactly HeaderSize bytes of h into a Header. The only
// decode failure it can report is a malformed kind byte; callers are
// responsible for ensuring h has length HeaderSize (a short read is a
// separate, EOF-flavored condition the caller must detect itself).
func DecodeHeader(h []byte) (Header, error) {
	kind := Kind(h[2*lenWidth])
	if kind != Put && kind != Del {
		return Header{}, kverrors.ErrKindDecode
	}
	return Header{
		KeyLen:   binary.BigEndian.Uint64(h[0:lenWidth]),
		ValueLen: binary.BigEndian.Uint64(h[lenWidth : 2*lenWidth]),
		Kind:     kind,
	}, nil
}

// ValidateUTF8 checks that key and value bytes decoded from a record are
// valid UTF-8, returning kverrors.ErrUtf8Decode otherwise.
func ValidateUTF8(key, value []byte) error {
	if !utf8.Valid(key) || !utf8.Valid(value) {
		return kverrors.ErrUtf8Decode
	}
	return nil
}
