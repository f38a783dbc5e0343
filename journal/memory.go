package journal

import (
	"context"
	"sync"
)

// Memory keeps the history in process. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	lastSeq int64
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(ctx context.Context, e Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e = assignSeq(e, m.lastSeq)
	if e.Seq > m.lastSeq {
		m.lastSeq = e.Seq
	}
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *Memory) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	sortBySeq(out)
	return out, nil
}

func (m *Memory) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = nil
	m.lastSeq = 0
	return nil
}

func (m *Memory) Close() error {
	return nil
}
