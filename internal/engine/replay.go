package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/minidb/kvs/internal/record"
)

// replay rebuilds the index by scanning the active file from offset 0,
// applying each PUT/DEL in order, and parking the writer at the end of the
// last clean record. pendingCompact is left at zero: bytes superseded
// during replay are not retroactively credited.
//
// A truncation-shaped failure (a short header or short body — see
// decode.go) is treated as a cleanly truncated tail: the file is truncated
// to the last good offset and replay stops there. Any other decode
// failure aborts Open.
func (e *Engine) replay() error {
	var offset int64

	for {
		entry, size, err := decodeAt(e.reader, offset)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				slog.Warn("engine: truncated tail detected during replay, dropping partial record",
					"offset", offset, "error", err)
				if terr := e.writer.Truncate(offset); terr != nil {
					return fmt.Errorf("engine: truncating partial tail at offset %d: %w", offset, terr)
				}
				break
			}
			return fmt.Errorf("engine: corrupt record at offset %d: %w", offset, err)
		}

		switch entry.Kind {
		case record.Put:
			e.index.Set(entry.Key, offset)
		case record.Del:
			e.index.Delete(entry.Key)
		}
		offset += size
	}

	e.writer.SetPos(offset)
	return nil
}
