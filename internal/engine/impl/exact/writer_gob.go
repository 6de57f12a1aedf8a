package exact

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"FlowVet/internal/engine/audit"
	"FlowVet/internal/engine/impl/exact/statistic"
	"FlowVet/internal/model"

	"github.com/rs/zerolog"
)

func init() {
	// Register the concrete type of Flow for gob encoding/decoding.
	gob.Register(&statistic.Flow{})
}

// SummaryData holds the metadata for a flow snapshot, internal to the writer.
type SummaryData struct {
	TaskName     string `json:"task_name"`
	TotalFlows   int    `json:"total_flows"`
	TotalBytes   uint64 `json:"total_bytes"`
	TotalPackets uint64 `json:"total_packets"`
	Shards       int    `json:"shards"`
	Timestamp    string `json:"timestamp"`
}

// auditSummary is the on-disk form of an audit snapshot.
type auditSummary struct {
	TotalAccepted  uint64               `json:"total_accepted"`
	TotalRejected  uint64               `json:"total_rejected"`
	Counts         []audit.RejectCount `json:"counts"`
	HeavyOffenders []audit.HeavyRecord `json:"heavy_offenders"`
	Timestamp      string               `json:"timestamp"`
}

// GobWriter handles writing snapshot data to disk in gob format. It
// accepts both flow snapshots and audit snapshots and implements the
// model.Writer interface.
type GobWriter struct {
	rootPath string
	interval time.Duration
	log      zerolog.Logger
}

// NewGobWriter creates a new disk writer rooted at rootPath.
func NewGobWriter(rootPath string, interval time.Duration, log zerolog.Logger) model.Writer {
	return &GobWriter{rootPath: rootPath, interval: interval, log: log}
}

// GetInterval returns the configured snapshot interval for this writer.
func (w *GobWriter) GetInterval() time.Duration {
	return w.interval
}

// Write serializes a snapshot payload into a timestamped directory.
func (w *GobWriter) Write(payload interface{}, timestamp string) error {
	switch snapshot := payload.(type) {
	case statistic.SnapshotData:
		return w.writeFlows(snapshot, timestamp)
	case audit.Snapshot:
		return w.writeAudit(snapshot, timestamp)
	default:
		return fmt.Errorf("invalid payload type for GobWriter: %T", payload)
	}
}

func (w *GobWriter) writeFlows(snapshot statistic.SnapshotData, timestamp string) error {
	taskDir := filepath.Join(w.rootPath, timestamp, snapshot.TaskName)
	if err := os.MkdirAll(taskDir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	for i, shard := range snapshot.Shards {
		if len(shard.Flows) == 0 {
			continue
		}

		filePath := filepath.Join(taskDir, fmt.Sprintf("shard_%d.dat", i))
		file, err := os.Create(filePath)
		if err != nil {
			return fmt.Errorf("failed to create snapshot file '%s': %w", filePath, err)
		}

		encoder := gob.NewEncoder(file)
		if err := encoder.Encode(shard.Flows); err != nil {
			file.Close()
			return fmt.Errorf("failed to encode flows to gob for file '%s': %w", filePath, err)
		}
		file.Close()
	}

	totalFlows, totalPackets, totalBytes := snapshot.Totals()
	if totalFlows == 0 {
		return nil
	}

	summary := SummaryData{
		TaskName:     snapshot.TaskName,
		TotalFlows:   totalFlows,
		TotalBytes:   totalBytes,
		TotalPackets: totalPackets,
		Shards:       len(snapshot.Shards),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	return writeJSON(filepath.Join(taskDir, "summary.json"), summary)
}

func (w *GobWriter) writeAudit(snapshot audit.Snapshot, timestamp string) error {
	auditDir := filepath.Join(w.rootPath, timestamp, "audit")
	if err := os.MkdirAll(auditDir, 0755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}

	summary := auditSummary{
		TotalAccepted:  snapshot.TotalAccepted,
		TotalRejected:  snapshot.TotalRejected,
		Counts:         snapshot.Counts,
		HeavyOffenders: snapshot.HeavyOffenders,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	return writeJSON(filepath.Join(auditDir, "rejects.json"), summary)
}

func writeJSON(path string, v interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json to '%s': %w", path, err)
	}
	return nil
}
