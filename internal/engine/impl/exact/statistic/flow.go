package statistic

import (
	"sync"
	"time"
)

// Flow represents an aggregated flow of accepted traffic with exact metrics.
type Flow struct {
	Key         string
	Fields      map[string]interface{} // Validated field values that make up the key.
	StartTime   time.Time
	EndTime     time.Time
	ByteCount   uint64
	PacketCount uint64
}

// Shard is a part of a sharded map, containing its own map and a mutex.
type Shard struct {
	Flows map[string]*Flow
	Mu    sync.RWMutex
}

// SnapshotData represents the full snapshot for a single exact task.
// This is the data structure returned by the Snapshot() method.
type SnapshotData struct {
	TaskName string
	Shards   []*Shard
}

// Totals walks the snapshot and sums its metrics. The snapshot is a
// deep copy, so no locking is needed.
func (s SnapshotData) Totals() (flows int, packets, bytes uint64) {
	for _, shard := range s.Shards {
		flows += len(shard.Flows)
		for _, flow := range shard.Flows {
			packets += flow.PacketCount
			bytes += flow.ByteCount
		}
	}
	return flows, packets, bytes
}
