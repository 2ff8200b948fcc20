package engine

import (
	"fmt"

	"github.com/minidb/kvs/internal/kverrors"
	"github.com/minidb/kvs/internal/record"
)

// Set durably appends a PUT record for key and updates the index. A
// subsequent Get for key within this engine instance returns value.
func (e *Engine) Set(key, value string) error {
	return e.write(record.NewPut(key, value))
}

// Remove appends a DEL record and erases key from the index, or fails with
// kverrors.ErrKeyNotFound without writing anything if key has no live entry.
func (e *Engine) Remove(key string) error {
	if _, ok := e.index.Lookup(key); !ok {
		return kverrors.ErrKeyNotFound
	}
	if err := e.write(record.NewDel(key)); err != nil {
		return err
	}
	e.index.Delete(key)
	return nil
}

// write is the common path shared by Set and Remove: insert the new offset
// into the index, account for any superseded record's size, append and
// flush, then merge if the threshold is crossed.
func (e *Engine) write(entry record.Entry) error {
	offset := e.writer.Pos()

	prevOffset, hadPrev := e.index.Set(entry.Key, offset)
	if hadPrev {
		size, err := decodeHeaderAt(e.reader, prevOffset)
		if err != nil {
			return fmt.Errorf("engine: reading superseded record at offset %d: %w", prevOffset, err)
		}
		e.pendingCompact += size
	}

	if _, err := e.writer.Append(entry.Encode()); err != nil {
		return fmt.Errorf("engine: appending record for key %q: %w", entry.Key, err)
	}

	if e.pendingCompact >= e.compactionThreshold {
		if err := e.merge(); err != nil {
			return fmt.Errorf("engine: compaction after writing key %q: %w", entry.Key, err)
		}
	}
	return nil
}
