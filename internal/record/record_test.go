package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry_EncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "put", entry: NewPut("key", "value")},
		{name: "del", entry: NewDel("key")},
		{name: "empty key and value", entry: NewPut("", "")},
		{name: "unicode key and value", entry: NewPut("キー", "値🎉")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := tt.entry.Encode()
			require.Equal(t, int(tt.entry.Size()), len(encoded))

			header, err := DecodeHeader(encoded[:HeaderSize])
			require.NoError(t, err)
			require.Equal(t, tt.entry.Kind, header.Kind)
			require.Equal(t, uint64(len(tt.entry.Key)), header.KeyLen)
			require.Equal(t, uint64(len(tt.entry.Value)), header.ValueLen)

			key := encoded[HeaderSize : HeaderSize+int(header.KeyLen)]
			value := encoded[HeaderSize+int(header.KeyLen):]
			require.NoError(t, ValidateUTF8(key, value))
			require.Equal(t, tt.entry.Key, string(key))
			require.Equal(t, tt.entry.Value, string(value))
		})
	}
}

func TestDecodeHeader_BadKind(t *testing.T) {
	buf := NewPut("k", "v").Encode()
	buf[2*lenWidth] = 0xFF

	_, err := DecodeHeader(buf[:HeaderSize])
	require.Error(t, err)
}

func TestValidateUTF8_Invalid(t *testing.T) {
	err := ValidateUTF8([]byte{0xff, 0xfe}, []byte("ok"))
	require.Error(t, err)
}

func TestHeaderSize(t *testing.T) {
	require.Equal(t, 17, HeaderSize)
}
