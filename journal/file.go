package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// File keeps the whole history as one JSON array on disk. The file is
// read once at open and rewritten on every change.
type File struct {
	mu      sync.Mutex
	path    string
	entries []Entry
	log     *zap.Logger
}

// NewFile opens the history at path. A missing file is an empty
// history. A file that cannot be decoded is logged and treated as empty;
// it is overwritten by the next append.
func NewFile(path string, log *zap.Logger) (*File, error) {
	if path == "" {
		return nil, errors.New("journal file path is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	f := &File{path: path, log: log.With(zap.String("store", "file"), zap.String("path", path))}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("read history: %w", err)
	}

	if err := json.Unmarshal(data, &f.entries); err != nil {
		f.log.Warn("unreadable history, starting empty", zap.Error(err))
		f.entries = nil
	}
	sortBySeq(f.entries)
	return f, nil
}

func (f *File) Append(ctx context.Context, e Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	// entries stay sorted by Seq, so the last one holds the maximum
	var last int64
	if n := len(f.entries); n > 0 {
		last = f.entries[n-1].Seq
	}
	e = assignSeq(e, last)

	next := append(append([]Entry(nil), f.entries...), e)
	sortBySeq(next)
	if err := f.write(next); err != nil {
		return Entry{}, err
	}
	f.entries = next
	f.log.Debug("entry appended", zap.String("id", e.ID), zap.Int64("seq", e.Seq))
	return e, nil
}

func (f *File) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *File) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove history: %w", err)
	}
	f.entries = nil
	f.log.Info("history cleared")
	return nil
}

func (f *File) Close() error {
	return nil
}

// write replaces the file through a temp file and rename.
func (f *File) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
