// Package index implements the in-memory key→offset index the engine keeps
// over the active log file. It is a thin, single-threaded map — the engine
// is non-reentrant, so no locking is needed here.
package index

// Index maps a live key to the absolute byte offset of that key's most
// recent PUT record in the active log file.
type Index struct {
	offsets map[string]int64
}

// New returns an empty Index.
func New() *Index {
	return &Index{offsets: make(map[string]int64)}
}

// Lookup returns the offset for key and whether it is present.
func (idx *Index) Lookup(key string) (int64, bool) {
	off, ok := idx.offsets[key]
	return off, ok
}

// Set records key's latest offset, returning the previous offset (if any)
// so the caller can account for the bytes it superseded.
func (idx *Index) Set(key string, offset int64) (previous int64, hadPrevious bool) {
	previous, hadPrevious = idx.offsets[key]
	idx.offsets[key] = offset
	return previous, hadPrevious
}

// Delete erases key's entry, if any. A no-op when key is already absent.
func (idx *Index) Delete(key string) {
	delete(idx.offsets, key)
}

// Len returns the number of live keys.
func (idx *Index) Len() int {
	return len(idx.offsets)
}

// Range calls fn for every (key, offset) pair. Iteration order is
// unspecified; callers that care about output order must sort themselves.
func (idx *Index) Range(fn func(key string, offset int64)) {
	for k, v := range idx.offsets {
		fn(k, v)
	}
}
