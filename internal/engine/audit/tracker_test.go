package audit

import (
	"fmt"
	"testing"

	"FlowVet/internal/config"
	"FlowVet/internal/validate"

	"github.com/rs/zerolog"
)

func rejectErr(value interface{}) error {
	return &validate.ValidationError{Value: value, Reason: "is not a valid ipv4 address"}
}

func TestTracker_Counts(t *testing.T) {
	tracker := NewTracker(config.AuditConfig{}, zerolog.Nop())

	tracker.RecordAccept()
	tracker.RecordAccept()
	tracker.RecordReject("src_ip", "5.5.5.", rejectErr("5.5.5."))
	tracker.RecordReject("src_ip", "5.5.5.", rejectErr("5.5.5."))
	tracker.RecordReject("dst_ip", "bogus", rejectErr("bogus"))

	snap := tracker.Snapshot()
	if snap.TotalAccepted != 2 {
		t.Errorf("Expected 2 accepted, got %d", snap.TotalAccepted)
	}
	if snap.TotalRejected != 3 {
		t.Errorf("Expected 3 rejected, got %d", snap.TotalRejected)
	}
	if len(snap.Counts) != 2 {
		t.Fatalf("Expected 2 field+reason pairs, got %d", len(snap.Counts))
	}
	for _, c := range snap.Counts {
		if c.Field == "src_ip" && c.Count != 2 {
			t.Errorf("Expected 2 src_ip rejects, got %d", c.Count)
		}
	}
}

func TestTracker_HeavyOffenders(t *testing.T) {
	tracker := NewTracker(config.AuditConfig{SketchWidth: 1024, SketchDepth: 3, TopK: 5}, zerolog.Nop())

	for i := 0; i < 50; i++ {
		tracker.RecordReject("src_ip", "5.5.5.", rejectErr("5.5.5."))
	}
	for i := 0; i < 3; i++ {
		tracker.RecordReject("src_ip", fmt.Sprintf("bad-%d", i), rejectErr("bad"))
	}

	snap := tracker.Snapshot()
	if len(snap.HeavyOffenders) == 0 {
		t.Fatal("Expected at least one heavy offender")
	}
	top := snap.HeavyOffenders[0]
	if top.Key != "src_ip=5.5.5." {
		t.Errorf("Expected top offender src_ip=5.5.5., got %s", top.Key)
	}
	if top.Count < 50 {
		t.Errorf("Expected top offender count >= 50, got %d", top.Count)
	}
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(config.AuditConfig{}, zerolog.Nop())

	tracker.RecordAccept()
	tracker.RecordReject("src_ip", 5555, rejectErr(5555))
	tracker.Reset()

	snap := tracker.Snapshot()
	if snap.TotalAccepted != 0 || snap.TotalRejected != 0 || len(snap.Counts) != 0 {
		t.Errorf("Expected empty snapshot after reset, got %+v", snap)
	}
}

func TestCountMin_QueryAfterInsert(t *testing.T) {
	sketch := NewCountMin(1024, 3)

	key := []byte("src_ip=999.1.1.1")
	for i := 0; i < 10; i++ {
		sketch.Insert(key)
	}

	if got := sketch.Query(key); got < 10 {
		t.Errorf("Expected count >= 10, got %d", got)
	}
	if got := sketch.Query([]byte("never-seen")); got != 0 {
		t.Errorf("Expected 0 for unseen key, got %d", got)
	}
}
