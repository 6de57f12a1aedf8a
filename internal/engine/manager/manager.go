package manager

import (
	"fmt"
	"net"
	"sync"
	"time"

	v1 "FlowVet/api/gen/v1"
	"FlowVet/internal/alerter"
	"FlowVet/internal/config"
	"FlowVet/internal/engine/audit"
	_ "FlowVet/internal/engine/impl/exact" // Registers the exact task type
	"FlowVet/internal/factory"
	"FlowVet/internal/model"
	"FlowVet/internal/notification"
	"FlowVet/internal/validate"

	"github.com/rs/zerolog"
)

// Manager orchestrates record validation, the aggregation tasks and
// their writers. Every inbound packet is materialized as a Flow record
// by writing through the validated fields; only accepted records reach
// the tasks, rejected writes are filed with the audit tracker.
type Manager struct {
	taskGroups  []factory.TaskGroup
	flowFactory *model.FlowFactory
	tracker     *audit.Tracker
	alerter     *alerter.Alerter
	log         zerolog.Logger

	// Worker pool for concurrent packet processing
	packetChannel chan *v1.PacketInfo
	numWorkers    int
	workerWg      sync.WaitGroup

	// Snapshotting and resetting resources
	period        time.Duration // Global measurement period
	done          chan struct{}
	snapshotterWg sync.WaitGroup
	resetterWg    sync.WaitGroup
}

// NewManager creates a new Manager.
func NewManager(cfg *config.Config, log zerolog.Logger) (*Manager, error) {
	taskGroups, err := factory.Create(cfg, log)
	if err != nil {
		return nil, err
	}

	period, err := time.ParseDuration(cfg.Engine.Period)
	if err != nil {
		return nil, fmt.Errorf("invalid engine period: %w", err)
	}
	if period <= 0 {
		return nil, fmt.Errorf("engine period must be a positive duration")
	}

	srcValidator, err := validate.Lookup(cfg.Validation.ValidatorFor("src_ip"))
	if err != nil {
		return nil, fmt.Errorf("binding src_ip: %w", err)
	}
	dstValidator, err := validate.Lookup(cfg.Validation.ValidatorFor("dst_ip"))
	if err != nil {
		return nil, fmt.Errorf("binding dst_ip: %w", err)
	}

	tracker := audit.NewTracker(cfg.Audit, log)

	var alertr *alerter.Alerter
	if cfg.Alerter.Enabled {
		var allTasks []model.Task
		for _, group := range taskGroups {
			allTasks = append(allTasks, group.Tasks...)
		}

		var notifier model.Notifier
		if cfg.SMTP.Host != "" {
			notifier = notification.NewEmailNotifier(cfg.SMTP)
		}

		if notifier != nil {
			alertr, err = alerter.NewAlerter(&cfg.Alerter, allTasks, tracker, notifier, log)
			if err != nil {
				return nil, fmt.Errorf("failed to create alerter: %w", err)
			}
			log.Info().Msg("Alerter enabled and initialized")
		} else {
			log.Warn().Msg("Alerter is enabled in config, but no notifiers are configured. Alerter will not run.")
		}
	}

	return &Manager{
		taskGroups:    taskGroups,
		flowFactory:   model.NewFlowFactory(srcValidator, dstValidator, log),
		tracker:       tracker,
		alerter:       alertr,
		log:           log,
		period:        period,
		done:          make(chan struct{}),
		packetChannel: make(chan *v1.PacketInfo, cfg.Engine.SizeOfFlowChannel),
		numWorkers:    cfg.Engine.NumWorkers,
	}, nil
}

// Start begins the manager's packet processing workers, snapshotter, and resetter goroutines.
func (m *Manager) Start() {
	// For each group, start a dedicated snapshotter for each of its writers.
	for _, group := range m.taskGroups {
		for _, writer := range group.Writers {
			m.snapshotterWg.Add(1)
			go m.runSnapshotter(writer, group.Tasks)
			m.log.Info().Dur("interval", writer.GetInterval()).Int("tasks", len(group.Tasks)).Msg("Started snapshotter")
		}
	}

	// Start the global resetter for all tasks across all groups.
	m.resetterWg.Add(1)
	go m.runResetter()
	m.log.Info().Dur("period", m.period).Msg("Started global resetter")

	// Start the independent alerter goroutine if it's enabled.
	if m.alerter != nil {
		go m.alerter.Start()
	}

	// Start the packet processing worker pool.
	m.workerWg.Add(m.numWorkers)
	for i := 0; i < m.numWorkers; i++ {
		go m.worker()
	}
	m.log.Info().Int("workers", m.numWorkers).Msg("Manager started")
}

// runSnapshotter runs a dedicated snapshot loop for a single writer and its associated tasks.
func (m *Manager) runSnapshotter(writer model.Writer, tasks []model.Task) {
	defer m.snapshotterWg.Done()
	interval := writer.GetInterval()
	if interval <= 0 {
		m.log.Warn().Dur("interval", interval).Msg("Invalid interval for writer, snapshotter will not run")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.takeSnapshotForWriter(writer, tasks)
		case <-m.done:
			m.takeSnapshotForWriter(writer, tasks)
			return
		}
	}
}

// takeSnapshotForWriter orchestrates taking and writing a snapshot for a specific writer.
func (m *Manager) takeSnapshotForWriter(writer model.Writer, tasks []model.Task) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	m.log.Info().Str("timestamp", timestamp).Int("tasks", len(tasks)).Msg("Taking snapshot")

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for _, task := range tasks {
		go func(t model.Task) {
			defer wg.Done()
			snapshotData := t.Snapshot()
			if err := writer.Write(snapshotData, timestamp); err != nil {
				m.log.Error().Str("task", t.Name()).Err(err).Msg("Error writing snapshot")
			}
		}(task)
	}

	wg.Wait()

	// The audit snapshot rides along with every writer pass.
	if err := writer.Write(m.tracker.Snapshot(), timestamp); err != nil {
		m.log.Error().Err(err).Msg("Error writing audit snapshot")
	}

	m.log.Info().Str("timestamp", timestamp).Msg("Completed snapshot")
}

// runResetter runs a dedicated loop to reset all tasks periodically.
func (m *Manager) runResetter() {
	defer m.resetterWg.Done()
	ticker := time.NewTicker(m.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.resetAllTasks()
		case <-m.done:
			m.log.Info().Msg("Resetter shutting down")
			return
		}
	}
}

// resetAllTasks iterates through all tasks across all groups and calls their Reset method.
func (m *Manager) resetAllTasks() {
	m.log.Info().Msg("Resetting all tasks for new measurement period")
	var wg sync.WaitGroup
	for _, group := range m.taskGroups {
		wg.Add(len(group.Tasks))
		for _, task := range group.Tasks {
			go func(t model.Task) {
				defer wg.Done()
				t.Reset()
			}(task)
		}
	}
	wg.Wait()
	m.tracker.Reset()
	m.log.Info().Msg("All tasks have been reset")
}

// Stop gracefully shuts down the manager.
func (m *Manager) Stop() {
	m.log.Info().Msg("Manager stopping...")
	// 1. Stop accepting new packets.
	close(m.packetChannel)

	// 2. Wait for all workers to finish processing buffered packets.
	m.log.Info().Msg("Waiting for workers to finish...")
	m.workerWg.Wait()

	// 3. Signal snapshotters and resetter to take final actions and exit.
	close(m.done)
	m.log.Info().Msg("Waiting for snapshotters and resetter to finish...")

	// 4. Wait for all goroutines to complete.
	m.snapshotterWg.Wait()
	m.resetterWg.Wait()

	// 5. Stop the alerter if it's running.
	if m.alerter != nil {
		m.alerter.Stop()
	}

	m.log.Info().Msg("Manager stopped")
}

// worker materializes Flow records from wire packets through the
// validated fields and fans accepted records out to all tasks.
func (m *Manager) worker() {
	defer m.workerWg.Done()
	for pbPacket := range m.packetChannel {
		flow := m.flowFactory.New()
		flow.Timestamp = pbPacket.Timestamp.AsTime()
		flow.Length = int(pbPacket.Length)
		flow.SrcPort = uint16(pbPacket.FiveTuple.SrcPort)
		flow.DstPort = uint16(pbPacket.FiveTuple.DstPort)
		flow.Protocol = uint8(pbPacket.FiveTuple.Protocol)

		srcIP := net.IP(pbPacket.FiveTuple.SrcIp).String()
		if err := flow.SetSrcIP(srcIP); err != nil {
			m.tracker.RecordReject("src_ip", srcIP, err)
			continue
		}
		dstIP := net.IP(pbPacket.FiveTuple.DstIp).String()
		if err := flow.SetDstIP(dstIP); err != nil {
			m.tracker.RecordReject("dst_ip", dstIP, err)
			continue
		}
		m.tracker.RecordAccept()

		// Fan out the accepted record to all tasks in all groups.
		for _, group := range m.taskGroups {
			for _, task := range group.Tasks {
				task.ProcessFlow(flow)
			}
		}
	}
}

// InputChannel returns the channel feeding the worker pool.
func (m *Manager) InputChannel() chan<- *v1.PacketInfo {
	return m.packetChannel
}

// AuditSnapshot exposes the current audit state, e.g. for the API.
func (m *Manager) AuditSnapshot() audit.Snapshot {
	return m.tracker.Snapshot()
}
