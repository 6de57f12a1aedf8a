package exact

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"FlowVet/internal/engine/audit"
	"FlowVet/internal/engine/impl/exact/statistic"

	"github.com/rs/zerolog"
)

func TestGobWriter_WriteFlows(t *testing.T) {
	root := t.TempDir()
	writer := NewGobWriter(root, time.Minute, zerolog.Nop())

	task := New("per_source", []string{"SrcIP"}, 4, zerolog.Nop())
	task.ProcessFlow(newFlow(t, "1.1.1.1", "2.2.2.2", 100))
	task.ProcessFlow(newFlow(t, "1.1.1.1", "2.2.2.2", 200))

	timestamp := "2026-01-02_15-04-05"
	if err := writer.Write(task.Snapshot(), timestamp); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	taskDir := filepath.Join(root, timestamp, "per_source")

	summaryData, err := os.ReadFile(filepath.Join(taskDir, "summary.json"))
	if err != nil {
		t.Fatalf("Failed to read summary: %v", err)
	}
	var summary SummaryData
	if err := json.Unmarshal(summaryData, &summary); err != nil {
		t.Fatalf("Failed to decode summary: %v", err)
	}
	if summary.TotalFlows != 1 || summary.TotalPackets != 2 || summary.TotalBytes != 300 {
		t.Errorf("Unexpected summary: %+v", summary)
	}

	// Decode the shard files back and verify the flow round-trips.
	entries, err := os.ReadDir(taskDir)
	if err != nil {
		t.Fatalf("Failed to list task dir: %v", err)
	}
	found := false
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".dat" {
			continue
		}
		file, err := os.Open(filepath.Join(taskDir, entry.Name()))
		if err != nil {
			t.Fatalf("Failed to open shard file: %v", err)
		}
		var flows map[string]*statistic.Flow
		if err := gob.NewDecoder(file).Decode(&flows); err != nil {
			t.Fatalf("Failed to decode shard file: %v", err)
		}
		file.Close()
		if flow, ok := flows["1.1.1.1"]; ok {
			found = true
			if flow.PacketCount != 2 {
				t.Errorf("Expected 2 packets, got %d", flow.PacketCount)
			}
		}
	}
	if !found {
		t.Error("Expected shard file containing flow keyed 1.1.1.1")
	}
}

func TestGobWriter_WriteAudit(t *testing.T) {
	root := t.TempDir()
	writer := NewGobWriter(root, time.Minute, zerolog.Nop())

	snapshot := audit.Snapshot{
		TotalAccepted: 10,
		TotalRejected: 2,
		Counts: []audit.RejectCount{
			{Field: "src_ip", Reason: "is not a valid ipv4 address", Count: 2},
		},
		HeavyOffenders: []audit.HeavyRecord{{Key: "src_ip=5.5.5.", Count: 2}},
	}

	timestamp := "2026-01-02_15-04-05"
	if err := writer.Write(snapshot, timestamp); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, timestamp, "audit", "rejects.json"))
	if err != nil {
		t.Fatalf("Failed to read audit summary: %v", err)
	}
	var summary auditSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("Failed to decode audit summary: %v", err)
	}
	if summary.TotalRejected != 2 || len(summary.Counts) != 1 {
		t.Errorf("Unexpected audit summary: %+v", summary)
	}
}

func TestGobWriter_RejectsUnknownPayload(t *testing.T) {
	writer := NewGobWriter(t.TempDir(), time.Minute, zerolog.Nop())
	if err := writer.Write("bogus", "2026-01-02_15-04-05"); err == nil {
		t.Error("Expected error for unknown payload type")
	}
}
