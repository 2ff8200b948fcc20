package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/minidb/kvs/internal/record"
	"github.com/minidb/kvs/internal/storage"
)

type liveRecord struct {
	key    string
	offset int64
	data   []byte
}

// merge scans the active file for live PUTs (those whose index offset
// equals their own offset), writes them in scan order to a sibling
// miniDB.merge file, then atomically swaps it in for miniDB.data.
//
// If no record is live, the log is left untouched and pendingCompact is
// simply reset; this is intentional, not a missed optimization.
func (e *Engine) merge() error {
	slog.Info("engine: compaction starting", "dir", e.dir, "pending_compact", e.pendingCompact)

	live, err := e.collectLive()
	if err != nil {
		return err
	}

	if len(live) == 0 {
		slog.Debug("engine: compaction found no live records, leaving log untouched")
		e.pendingCompact = 0
		return nil
	}

	mergePath := filepath.Join(filepath.Dir(e.dataPath), mergeFileName)
	if err := e.writeMergeFile(mergePath, live); err != nil {
		return err
	}

	if err := e.swapInMergeFile(mergePath); err != nil {
		return err
	}

	e.pendingCompact = 0
	slog.Info("engine: compaction finished", "dir", e.dir, "live_records", len(live))
	return nil
}

// collectLive scans the active file from offset 0, decoding every record,
// and returns the live PUTs in ascending on-disk order. Superseded records
// and DELs are dropped.
func (e *Engine) collectLive() ([]liveRecord, error) {
	var live []liveRecord
	var offset int64

	for {
		entry, size, err := decodeAt(e.reader, offset)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("engine: merge scan failed at offset %d: %w", offset, err)
		}

		if idxOffset, ok := e.index.Lookup(entry.Key); ok && idxOffset == offset && entry.Kind == record.Put {
			live = append(live, liveRecord{key: entry.Key, offset: offset, data: entry.Encode()})
		}
		offset += size
	}
	return live, nil
}

// writeMergeFile writes each live record to a fresh file at mergePath,
// updating the index to the record's new offset as it goes, then closes it.
func (e *Engine) writeMergeFile(mergePath string, live []liveRecord) error {
	if err := os.Remove(mergePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("engine: removing stale merge file %q: %w", mergePath, err)
	}
	mergeWriter, err := storage.OpenWriter(mergePath)
	if err != nil {
		return fmt.Errorf("engine: creating merge file %q: %w", mergePath, err)
	}

	for _, lr := range live {
		newOffset := mergeWriter.Pos()
		if _, err := mergeWriter.Append(lr.data); err != nil {
			mergeWriter.Close()
			return fmt.Errorf("engine: writing merge record for key %q: %w", lr.key, err)
		}
		e.index.Set(lr.key, newOffset)
	}

	if err := mergeWriter.Close(); err != nil {
		return fmt.Errorf("engine: closing merge file %q: %w", mergePath, err)
	}
	return nil
}

// swapInMergeFile closes the engine's current reader/writer, atomically
// replaces the active data file with the merge file (via
// natefinch/atomic.ReplaceFile, which renames-over-destination atomically
// on every supported platform), and reopens fresh handles on it. This
// avoids the window a plain remove-then-rename sequence would leave open
// if the process died between the two steps.
func (e *Engine) swapInMergeFile(mergePath string) error {
	if err := e.reader.Close(); err != nil {
		return fmt.Errorf("engine: closing reader before merge swap: %w", err)
	}
	if err := e.writer.Close(); err != nil {
		return fmt.Errorf("engine: closing writer before merge swap: %w", err)
	}

	if err := atomic.ReplaceFile(mergePath, e.dataPath); err != nil {
		return fmt.Errorf("engine: replacing %q with merge file: %w", e.dataPath, err)
	}

	newWriter, err := storage.OpenWriter(e.dataPath)
	if err != nil {
		return fmt.Errorf("engine: reopening writer after merge: %w", err)
	}
	newReader, err := storage.OpenReader(e.dataPath)
	if err != nil {
		newWriter.Close()
		return fmt.Errorf("engine: reopening reader after merge: %w", err)
	}

	e.writer = newWriter
	e.reader = newReader
	return nil
}
