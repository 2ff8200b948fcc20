// Package engine implements the miniDB storage engine: open/recovery,
// get/set/remove, and space-reclaiming compaction over a single append-only
// log file, coordinating the record codec, the positioned reader/writer,
// and the in-memory index.
package engine

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/minidb/kvs/internal/config"
	"github.com/minidb/kvs/internal/index"
	"github.com/minidb/kvs/internal/kverrors"
	"github.com/minidb/kvs/internal/storage"
)

// dataFileName and mergeFileName are the fixed names for the active log
// and the transient compaction output within a data directory.
const (
	dataFileName  = "miniDB.data"
	mergeFileName = "miniDB.merge"
)

// Engine is a single-process, crash-tolerant key-value store. It assumes
// exclusive ownership of its data directory for its lifetime and is not
// safe for concurrent use from multiple goroutines.
type Engine struct {
	dir                 string
	dataPath            string
	writer              *storage.Writer
	reader              *storage.Reader
	index               *index.Index
	pendingCompact      int64
	compactionThreshold int64
}

// Open locates or creates the single data file at <dir>/miniDB.data, replays
// it to rebuild the index, and returns a ready engine positioned to append
// at the end of the log.
func Open(dir string, compactionThreshold int64) (*Engine, error) {
	if dir == "" {
		return nil, kverrors.ErrInvalidDataPath
	}
	if compactionThreshold <= 0 {
		compactionThreshold = config.DefaultCompactionThreshold
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("engine: creating data directory %q: %w", dir, err)
	}

	dataPath := filepath.Join(dir, dataFileName)
	if filepath.Dir(dataPath) == dataPath {
		return nil, kverrors.ErrInvalidDataPath
	}

	writer, err := storage.OpenWriter(dataPath)
	if err != nil {
		return nil, fmt.Errorf("engine: opening writer on %q: %w", dataPath, err)
	}
	reader, err := storage.OpenReader(dataPath)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("engine: opening reader on %q: %w", dataPath, err)
	}

	e := &Engine{
		dir:                 dir,
		dataPath:            dataPath,
		writer:              writer,
		reader:              reader,
		index:               index.New(),
		compactionThreshold: compactionThreshold,
	}

	if err := e.replay(); err != nil {
		slog.Error("engine: replay failed, aborting open", "dir", dir, "error", err)
		e.Close()
		return nil, err
	}

	slog.Info("engine: opened", "dir", dir, "keys", e.index.Len())
	return e, nil
}

// OpenWithConfig is a convenience wrapper reading dir and the compaction
// threshold out of a loaded config.Config.
func OpenWithConfig(cfg *config.Config) (*Engine, error) {
	return Open(cfg.DataDir, cfg.CompactionThreshold)
}

// Close flushes and releases both file handles. It is safe to call Close
// even if Open partially failed after allocating the writer/reader.
func (e *Engine) Close() error {
	slog.Debug("engine: closing", "dir", e.dir)
	var writerErr, readerErr error
	if e.writer != nil {
		writerErr = e.writer.Close()
	}
	if e.reader != nil {
		readerErr = e.reader.Close()
	}
	if writerErr != nil {
		return writerErr
	}
	return readerErr
}

// Len returns the number of live keys currently in the index.
func (e *Engine) Len() int {
	return e.index.Len()
}

// PendingCompact returns the current reclaimable-byte estimate, exposed for
// tests that assert compaction has (or hasn't) triggered.
func (e *Engine) PendingCompact() int64 {
	return e.pendingCompact
}
