package alerter

import (
	"strings"
	"sync"
	"testing"

	"FlowVet/internal/config"
	"FlowVet/internal/engine/audit"
	"FlowVet/internal/validate"

	"github.com/rs/zerolog"
)

type fakeNotifier struct {
	mu       sync.Mutex
	subjects []string
	bodies   []string
}

func (n *fakeNotifier) Send(subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
	return nil
}

func TestCheck(t *testing.T) {
	cases := []struct {
		value, threshold float64
		operator         string
		want             bool
	}{
		{10, 5, ">", true},
		{10, 10, ">", false},
		{10, 10, ">=", true},
		{3, 5, "<", true},
		{5, 5, "=", true},
		{5, 5, "<=", true},
		{5, 5, "??", false},
	}
	for _, c := range cases {
		if got := check(c.value, c.threshold, c.operator); got != c.want {
			t.Errorf("check(%v, %v, %q) = %v, want %v", c.value, c.threshold, c.operator, got, c.want)
		}
	}
}

func TestAlerter_RejectCountRule(t *testing.T) {
	tracker := audit.NewTracker(config.AuditConfig{}, zerolog.Nop())
	for i := 0; i < 5; i++ {
		tracker.RecordReject("src_ip", "5.5.5.", &validate.ValidationError{Value: "5.5.5.", Reason: "is not a valid ipv4 address"})
	}

	notifier := &fakeNotifier{}
	cfg := &config.AlerterConfig{
		Enabled:       true,
		CheckInterval: "1h",
		Rules: []config.AlerterRule{
			{Name: "too many rejects", TaskName: "audit", Metric: "reject_count", Operator: ">", Threshold: 3},
		},
	}

	a, err := NewAlerter(cfg, nil, tracker, notifier, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewAlerter failed: %v", err)
	}

	a.evaluate()

	if len(notifier.bodies) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifier.bodies))
	}
	if !strings.Contains(notifier.bodies[0], "too many rejects") {
		t.Errorf("Notification body missing rule name: %s", notifier.bodies[0])
	}
	if !strings.Contains(notifier.bodies[0], "reject_count") {
		t.Errorf("Notification body missing metric: %s", notifier.bodies[0])
	}
}

func TestAlerter_NoNotificationBelowThreshold(t *testing.T) {
	tracker := audit.NewTracker(config.AuditConfig{}, zerolog.Nop())
	notifier := &fakeNotifier{}
	cfg := &config.AlerterConfig{
		CheckInterval: "1h",
		Rules: []config.AlerterRule{
			{Name: "too many rejects", TaskName: "audit", Metric: "reject_count", Operator: ">", Threshold: 3},
		},
	}

	a, err := NewAlerter(cfg, nil, tracker, notifier, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewAlerter failed: %v", err)
	}

	a.evaluate()

	if len(notifier.bodies) != 0 {
		t.Errorf("Expected no notifications, got %d", len(notifier.bodies))
	}
}

func TestNewAlerter_InvalidInterval(t *testing.T) {
	cfg := &config.AlerterConfig{CheckInterval: "soon"}
	if _, err := NewAlerter(cfg, nil, nil, &fakeNotifier{}, zerolog.Nop()); err == nil {
		t.Error("Expected error for invalid check_interval")
	}
}
