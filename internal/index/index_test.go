package index

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestIndex_SetLookupDelete(t *testing.T) {
	idx := New()

	_, ok := idx.Lookup("k")
	require.False(t, ok)

	prev, had := idx.Set("k", 10)
	require.False(t, had)
	require.Equal(t, int64(0), prev)

	off, ok := idx.Lookup("k")
	require.True(t, ok)
	require.Equal(t, int64(10), off)

	prev, had = idx.Set("k", 42)
	require.True(t, had)
	require.Equal(t, int64(10), prev)

	off, ok = idx.Lookup("k")
	require.True(t, ok)
	require.Equal(t, int64(42), off)

	idx.Delete("k")
	_, ok = idx.Lookup("k")
	require.False(t, ok)
}

func TestIndex_LenAndRange(t *testing.T) {
	idx := New()
	idx.Set("a", 1)
	idx.Set("b", 2)
	idx.Set("c", 3)
	require.Equal(t, 3, idx.Len())

	seen := map[string]int64{}
	idx.Range(func(key string, offset int64) { seen[key] = offset })
	want := map[string]int64{"a": 1, "b": 2, "c": 3}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("Range mismatch (-want +got):\n%s", diff)
	}
}
