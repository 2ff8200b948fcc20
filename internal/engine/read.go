package engine

import "fmt"

// Get returns the current value for key and true, or ("", false, nil) if
// key is not present in the index (including having been removed). It
// never errors because of a missing key; an error here means the index
// pointed at an offset that failed to decode, which indicates I/O failure
// or on-disk corruption, never a normal miss.
func (e *Engine) Get(key string) (string, bool, error) {
	offset, ok := e.index.Lookup(key)
	if !ok {
		return "", false, nil
	}

	entry, _, err := decodeAt(e.reader, offset)
	if err != nil {
		return "", false, fmt.Errorf("engine: decoding indexed record for key %q at offset %d: %w", key, offset, err)
	}
	return entry.Value, true, nil
}
