package metrics

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

// Memo remembers the last snapshot keyed on a digest of the input collections
// and the evaluation time truncated to Resolution. now is truncated before
// aggregating, so a hit returns exactly what a recomputation would.
type Memo struct {
	rules      RuleSet
	resolution time.Duration

	mu     sync.Mutex
	key    uint64
	valid  bool
	snap   Snapshot
	hits   uint64
	misses uint64
}

// NewMemo creates a memo for rules. A non-positive resolution keeps now as is.
func NewMemo(rules RuleSet, resolution time.Duration) *Memo {
	return &Memo{rules: rules, resolution: resolution}
}

// Aggregate returns the snapshot of c at now, recomputing only when the inputs changed.
func (m *Memo) Aggregate(c models.Collections, now time.Time) Snapshot {
	if m.resolution > 0 {
		now = now.Truncate(m.resolution)
	}

	key, ok := digest(c, now)
	if !ok {
		return Aggregate(c, m.rules, now)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.key == key {
		m.hits++
		return m.snap.Clone()
	}

	m.misses++
	m.snap = Aggregate(c, m.rules, now)
	m.key = key
	m.valid = true
	return m.snap.Clone()
}

// Stats returns the hit and miss counts.
func (m *Memo) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

// digest hashes the canonical JSON form of the collections (map keys sorted by
// encoding/json) together with now. Building the key is itself a linear pass
// over c, so the memo keeps snapshots stable within a resolution window rather
// than making a hit cheaper than a recomputation.
func digest(c models.Collections, now time.Time) (uint64, bool) {
	d := xxhash.New()
	if err := json.NewEncoder(d).Encode(c); err != nil {
		return 0, false
	}

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(now.UnixNano()))
	_, _ = d.Write(ts[:])
	_, _ = d.WriteString(now.Location().String())

	return d.Sum64(), true
}
