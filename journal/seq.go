package journal

import (
	"sort"
	"time"

	"github.com/rustyeddy/intraday/internal/id"
)

// assignSeq fills in the sequence number, ID and timestamp of e when
// the caller left them unset.
func assignSeq(e Entry, lastSeq int64) Entry {
	if e.Seq == 0 {
		e.Seq = lastSeq + 1
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.ID == "" {
		e.ID = id.At(e.CreatedAt)
	}
	return e
}

func sortBySeq(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Seq < entries[j].Seq
	})
}
