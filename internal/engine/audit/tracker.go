// Package audit accounts for rejected writes: which fields rejected
// how many candidates, for which reasons, and which bad values showed
// up most often.
package audit

import (
	"errors"
	"fmt"
	"sync"

	"FlowVet/internal/config"
	"FlowVet/internal/validate"

	"github.com/rs/zerolog"
)

const defaultTopK = 20

// RejectCount is the number of rejections seen for one field+reason pair.
type RejectCount struct {
	Field  string
	Reason string
	Count  uint64
}

// Snapshot is the audit state at a point in time, deep-copied so the
// tracker can keep counting while writers persist it.
type Snapshot struct {
	TotalAccepted  uint64
	TotalRejected  uint64
	Counts         []RejectCount
	HeavyOffenders []HeavyRecord
}

// Tracker accumulates accept/reject accounting for a measurement
// period. Exact per-field+reason counters plus a count-min sketch over
// the rejected values themselves. Safe for concurrent use.
type Tracker struct {
	mu       sync.Mutex
	accepted uint64
	rejected uint64
	counts   map[string]*RejectCount
	sketch   *CountMin
	topK     int
	log      zerolog.Logger
}

// NewTracker creates a tracker sized from the audit config.
func NewTracker(cfg config.AuditConfig, log zerolog.Logger) *Tracker {
	topK := cfg.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Tracker{
		counts: make(map[string]*RejectCount),
		sketch: NewCountMin(cfg.SketchWidth, cfg.SketchDepth),
		topK:   topK,
		log:    log,
	}
}

// RecordAccept counts one fully accepted record.
func (t *Tracker) RecordAccept() {
	t.mu.Lock()
	t.accepted++
	t.mu.Unlock()
}

// RecordReject counts one rejected write. The reason is taken from the
// ValidationError; a non-validation error is filed under "error".
func (t *Tracker) RecordReject(field string, value interface{}, err error) {
	reason := "error"
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		reason = verr.Reason
	}

	offender := fmt.Sprintf("%s=%v", field, value)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.rejected++
	key := field + "|" + reason
	if c, ok := t.counts[key]; ok {
		c.Count++
	} else {
		t.counts[key] = &RejectCount{Field: field, Reason: reason, Count: 1}
	}
	t.sketch.Insert([]byte(offender))

	t.log.Debug().Str("field", field).Str("reason", reason).Msgf("rejected: %v", value)
}

// Snapshot returns a deep copy of the current audit state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := make([]RejectCount, 0, len(t.counts))
	for _, c := range t.counts {
		counts = append(counts, *c)
	}

	return Snapshot{
		TotalAccepted:  t.accepted,
		TotalRejected:  t.rejected,
		Counts:         counts,
		HeavyOffenders: t.sketch.HeavyHitters(t.topK),
	}
}

// Reset clears all accounting for a new measurement period.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.accepted = 0
	t.rejected = 0
	t.counts = make(map[string]*RejectCount)
	t.sketch.Reset()
}
