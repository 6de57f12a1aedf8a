package alerter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"FlowVet/internal/config"
	"FlowVet/internal/engine/audit"
	"FlowVet/internal/engine/impl/exact/statistic"
	"FlowVet/internal/model"

	"github.com/gomarkdown/markdown"
	"github.com/rs/zerolog"
)

// Alerter periodically evaluates task snapshots and the validation
// audit state against threshold rules, and sends a notification when a
// rule triggers.
type Alerter struct {
	tasks         []model.Task
	tracker       *audit.Tracker
	rules         []config.AlerterRule
	notifier      model.Notifier
	checkInterval time.Duration
	log           zerolog.Logger
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewAlerter creates a new Alerter instance.
func NewAlerter(cfg *config.AlerterConfig, tasks []model.Task, tracker *audit.Tracker, notifier model.Notifier, log zerolog.Logger) (*Alerter, error) {
	interval, err := time.ParseDuration(cfg.CheckInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid check_interval for alerter: %w", err)
	}

	return &Alerter{
		tasks:         tasks,
		tracker:       tracker,
		rules:         cfg.Rules,
		notifier:      notifier,
		checkInterval: interval,
		log:           log,
		stopChan:      make(chan struct{}),
	}, nil
}

// Start begins the periodic evaluation of alert rules.
func (a *Alerter) Start() {
	a.log.Info().Msg("Alerter started")

	a.wg.Add(1)
	defer a.wg.Done()

	ticker := time.NewTicker(a.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.evaluate()
		case <-a.stopChan:
			return
		}
	}
}

// Stop gracefully stops the alerter's evaluation loop and runs one
// final evaluation.
func (a *Alerter) Stop() {
	a.log.Info().Msg("Stopping Alerter...")
	close(a.stopChan)
	a.wg.Wait()
	a.evaluate()
}

// evaluate checks every rule against the current snapshots and sends a
// single notification covering all triggered rules.
func (a *Alerter) evaluate() {
	var triggered []string

	for _, task := range a.tasks {
		snapshot, ok := task.Snapshot().(statistic.SnapshotData)
		if !ok {
			a.log.Error().Str("task", task.Name()).Msgf("Unexpected snapshot type: %T", task.Snapshot())
			continue
		}
		flows, packets, bytes := snapshot.Totals()

		for _, rule := range a.rules {
			if rule.TaskName != task.Name() {
				continue
			}

			var value float64
			var unit string
			switch rule.Metric {
			case "total_packets":
				value, unit = float64(packets), "packets"
			case "total_bytes":
				value, unit = float64(bytes), "bytes"
			case "total_flows":
				value, unit = float64(flows), "flows"
			default:
				continue
			}

			if check(value, rule.Threshold, rule.Operator) {
				triggered = append(triggered, ruleMessage(rule, value, unit))
			}
		}
	}

	auditSnap := a.tracker.Snapshot()
	for _, rule := range a.rules {
		if rule.TaskName != "audit" {
			continue
		}

		var value float64
		var unit string
		switch rule.Metric {
		case "reject_count":
			value, unit = float64(auditSnap.TotalRejected), "rejects"
		case "accept_count":
			value, unit = float64(auditSnap.TotalAccepted), "accepts"
		case "reject_rate":
			total := auditSnap.TotalAccepted + auditSnap.TotalRejected
			if total == 0 {
				continue
			}
			value, unit = float64(auditSnap.TotalRejected)/float64(total), "ratio"
		default:
			continue
		}

		if check(value, rule.Threshold, rule.Operator) {
			triggered = append(triggered, ruleMessage(rule, value, unit))
		}
	}

	if len(triggered) == 0 {
		return
	}

	body := strings.Join(triggered, "\n\n---\n\n")
	html := string(markdown.ToHTML([]byte(body), nil, nil))
	if err := a.notifier.Send("FlowVet alert", html); err != nil {
		a.log.Error().Err(err).Msg("Failed to send alert notification")
	} else {
		a.log.Info().Int("rules", len(triggered)).Msg("Alert notification sent")
	}
}

// ruleMessage renders one triggered rule as markdown.
func ruleMessage(rule config.AlerterRule, value float64, unit string) string {
	return fmt.Sprintf("### Alert: %s\n\n"+
		"- **Task:** `%s`\n"+
		"- **Metric:** `%s`\n"+
		"- **Condition:** `%s %.2f`\n"+
		"- **Observed Value:** `%.2f %s`\n",
		rule.Name, rule.TaskName, rule.Metric, rule.Operator, rule.Threshold, value, unit)
}

// check compares a value against a threshold based on an operator.
func check(value, threshold float64, operator string) bool {
	switch operator {
	case ">":
		return value > threshold
	case "<":
		return value < threshold
	case "=":
		return value == threshold
	case ">=":
		return value >= threshold
	case "<=":
		return value <= threshold
	default:
		return false
	}
}
