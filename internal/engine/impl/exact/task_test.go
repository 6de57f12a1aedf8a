package exact

import (
	"testing"
	"time"

	"FlowVet/internal/engine/impl/exact/statistic"
	"FlowVet/internal/model"
	"FlowVet/internal/validate"

	"github.com/rs/zerolog"
)

func newFlow(t *testing.T, src, dst string, length int) *model.Flow {
	t.Helper()
	ipv4, err := validate.Lookup("ipv4")
	if err != nil {
		t.Fatalf("Failed to look up validator: %v", err)
	}
	flow := model.NewFlowFactory(ipv4, ipv4, zerolog.Nop()).New()
	if err := flow.SetSrcIP(src); err != nil {
		t.Fatalf("Failed to set src_ip: %v", err)
	}
	if err := flow.SetDstIP(dst); err != nil {
		t.Fatalf("Failed to set dst_ip: %v", err)
	}
	flow.SrcPort = 12345
	flow.DstPort = 53
	flow.Protocol = 17
	flow.Timestamp = time.Now()
	flow.Length = length
	return flow
}

func snapshotOf(t *testing.T, task model.Task) statistic.SnapshotData {
	t.Helper()
	snap, ok := task.Snapshot().(statistic.SnapshotData)
	if !ok {
		t.Fatalf("Unexpected snapshot type: %T", task.Snapshot())
	}
	return snap
}

func TestTask_AggregatesByKey(t *testing.T) {
	task := New("per_pair", []string{"SrcIP", "DstIP"}, 16, zerolog.Nop())

	task.ProcessFlow(newFlow(t, "1.1.1.1", "2.2.2.2", 100))
	task.ProcessFlow(newFlow(t, "1.1.1.1", "2.2.2.2", 200))
	task.ProcessFlow(newFlow(t, "3.3.3.3", "2.2.2.2", 50))

	snap := snapshotOf(t, task)
	flows, packets, bytes := snap.Totals()
	if flows != 2 {
		t.Errorf("Expected 2 aggregated flows, got %d", flows)
	}
	if packets != 3 {
		t.Errorf("Expected 3 packets, got %d", packets)
	}
	if bytes != 350 {
		t.Errorf("Expected 350 bytes, got %d", bytes)
	}

	var pair *statistic.Flow
	for _, shard := range snap.Shards {
		if f, ok := shard.Flows["1.1.1.1-2.2.2.2"]; ok {
			pair = f
		}
	}
	if pair == nil {
		t.Fatal("Expected flow keyed 1.1.1.1-2.2.2.2")
	}
	if pair.PacketCount != 2 || pair.ByteCount != 300 {
		t.Errorf("Unexpected pair metrics: %d packets, %d bytes", pair.PacketCount, pair.ByteCount)
	}
	if pair.Fields["SrcIP"] != "1.1.1.1" {
		t.Errorf("Expected SrcIP field 1.1.1.1, got %v", pair.Fields["SrcIP"])
	}
}

func TestTask_SkipsFlowWithUnsetKeyField(t *testing.T) {
	task := New("per_source", []string{"SrcIP"}, 16, zerolog.Nop())

	ipv4, _ := validate.Lookup("ipv4")
	flow := model.NewFlowFactory(ipv4, ipv4, zerolog.Nop()).New()
	flow.Timestamp = time.Now()
	flow.Length = 100

	// src_ip was never set; the flow must not be aggregated.
	task.ProcessFlow(flow)

	snap := snapshotOf(t, task)
	if flows, _, _ := snap.Totals(); flows != 0 {
		t.Errorf("Expected 0 flows, got %d", flows)
	}
}

func TestTask_Reset(t *testing.T) {
	task := New("per_source", []string{"SrcIP"}, 16, zerolog.Nop())

	task.ProcessFlow(newFlow(t, "1.1.1.1", "2.2.2.2", 100))
	task.Reset()

	snap := snapshotOf(t, task)
	if flows, _, _ := snap.Totals(); flows != 0 {
		t.Errorf("Expected 0 flows after reset, got %d", flows)
	}
}

func TestTask_SnapshotIsDeepCopy(t *testing.T) {
	task := New("per_source", []string{"SrcIP"}, 16, zerolog.Nop())

	task.ProcessFlow(newFlow(t, "1.1.1.1", "2.2.2.2", 100))
	snap := snapshotOf(t, task)

	// Mutating the task after the snapshot must not change the snapshot.
	task.ProcessFlow(newFlow(t, "1.1.1.1", "2.2.2.2", 100))

	if _, packets, _ := snap.Totals(); packets != 1 {
		t.Errorf("Expected snapshot to stay at 1 packet, got %d", packets)
	}
}
