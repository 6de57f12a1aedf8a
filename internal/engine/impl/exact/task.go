package exact

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"

	"FlowVet/internal/config"
	"FlowVet/internal/engine/impl/exact/statistic"
	"FlowVet/internal/factory"
	"FlowVet/internal/model"

	"github.com/rs/zerolog"
)

// --- Factory Registration ---

func init() {
	factory.RegisterTaskType("exact", func(cfg *config.Config, log zerolog.Logger) (*factory.TaskGroup, error) {
		engineCfg := cfg.Engine

		// Create all enabled writers for this task group.
		writers := make([]model.Writer, 0, len(engineCfg.Writers))
		for _, writerDef := range engineCfg.Writers {
			if !writerDef.Enabled {
				continue
			}

			interval, err := time.ParseDuration(writerDef.SnapshotInterval)
			if err != nil {
				log.Warn().Str("type", writerDef.Type).Err(err).Msg("Invalid snapshot_interval for writer, skipping")
				continue
			}

			var writer model.Writer
			switch writerDef.Type {
			case "gob":
				writer = NewGobWriter(writerDef.Gob.RootPath, interval, log)
			case "clickhouse":
				writer, err = NewClickHouseWriter(writerDef.ClickHouse, interval, log)
				if err != nil {
					log.Warn().Str("type", writerDef.Type).Err(err).Msg("Failed to create writer, skipping")
					continue
				}
			default:
				log.Warn().Str("type", writerDef.Type).Msg("Unknown writer type in config, skipping")
				continue
			}
			writers = append(writers, writer)
		}

		// Create all tasks for this group.
		tasks := make([]model.Task, len(engineCfg.Tasks))
		for i, taskCfg := range engineCfg.Tasks {
			tasks[i] = New(taskCfg.Name, taskCfg.KeyFields, taskCfg.NumShards, log)
		}

		return &factory.TaskGroup{Tasks: tasks, Writers: writers}, nil
	})
}

// --- Task Implementation ---

const defaultShardCount = 256

// Task performs exact aggregation of accepted flow records for a
// specific set of key fields using a sharded map. It implements the
// model.Task interface. Address key fields are read through the
// record's validated accessors.
type Task struct {
	name       string
	keyFields  []string
	shards     []*statistic.Shard
	shardCount uint32
	log        zerolog.Logger
}

// New creates a new exact aggregation task.
func New(name string, keyFields []string, numShards uint32, log zerolog.Logger) model.Task {
	if numShards <= 0 || numShards >= 32768 {
		numShards = defaultShardCount
	}
	log.Info().Str("task", name).Uint32("shards", numShards).Strs("keys", keyFields).Msg("Creating exact task")
	task := &Task{
		name:       name,
		keyFields:  keyFields,
		shards:     make([]*statistic.Shard, numShards),
		shardCount: numShards,
		log:        log,
	}
	for i := 0; i < int(numShards); i++ {
		task.shards[i] = &statistic.Shard{
			Flows: make(map[string]*statistic.Flow),
		}
	}
	return task
}

// Name returns the name of the task.
func (t *Task) Name() string {
	return t.name
}

// ProcessFlow folds a single accepted record into the correct shard.
func (t *Task) ProcessFlow(flow *model.Flow) {
	fields, key, err := t.generateKeyAndFields(flow)
	if err != nil {
		t.log.Error().Str("task", t.name).Err(err).Msg("Error generating key")
		return
	}

	shard := t.getShard(key)
	shard.Mu.Lock()
	defer shard.Mu.Unlock()

	if agg, ok := shard.Flows[key]; ok {
		agg.EndTime = flow.Timestamp
		agg.PacketCount++
		agg.ByteCount += uint64(flow.Length)
	} else {
		shard.Flows[key] = &statistic.Flow{
			Key:         key,
			Fields:      fields,
			StartTime:   flow.Timestamp,
			EndTime:     flow.Timestamp,
			PacketCount: 1,
			ByteCount:   uint64(flow.Length),
		}
	}
}

// Snapshot returns a deep copy of the current aggregated data.
// Concurrent writes are safe; the snapshot reflects a consistent state
// per shard at the moment of call.
func (t *Task) Snapshot() interface{} {
	snapshotShards := make([]*statistic.Shard, t.shardCount)
	var wg sync.WaitGroup
	wg.Add(int(t.shardCount))

	for i := 0; i < int(t.shardCount); i++ {
		go func(i int) {
			defer wg.Done()

			shard := t.shards[i]
			shard.Mu.RLock()
			copiedFlows := make(map[string]*statistic.Flow, len(shard.Flows))
			for k, v := range shard.Flows {
				flowCopy := *v
				copiedFlows[k] = &flowCopy
			}
			shard.Mu.RUnlock()

			snapshotShards[i] = &statistic.Shard{
				Flows: copiedFlows,
			}
		}(i)
	}

	wg.Wait()

	return statistic.SnapshotData{
		TaskName: t.name,
		Shards:   snapshotShards,
	}
}

// Reset clears the internal state of the task, preparing for a new measurement period.
func (t *Task) Reset() {
	var wait sync.WaitGroup
	wait.Add(int(t.shardCount))

	for i := 0; i < int(t.shardCount); i++ {
		go func(i int) {
			defer wait.Done()
			shard := t.shards[i]
			shard.Mu.Lock()
			shard.Flows = make(map[string]*statistic.Flow)
			shard.Mu.Unlock()
		}(i)
	}

	wait.Wait()
}

// getShard returns the appropriate shard for a given key.
func (t *Task) getShard(key string) *statistic.Shard {
	hasher := fnv.New32a()
	hasher.Write([]byte(key))
	return t.shards[hasher.Sum32()%t.shardCount]
}

// generateKeyAndFields creates a unique string key and a field map for
// a record. Address fields go through the validated accessors, so an
// unset field surfaces as an error here rather than as a bogus key.
func (t *Task) generateKeyAndFields(flow *model.Flow) (map[string]interface{}, string, error) {
	parts := make([]string, len(t.keyFields))
	fields := make(map[string]interface{}, len(t.keyFields))

	for i, fieldName := range t.keyFields {
		switch fieldName {
		case "SrcIP":
			val, err := flow.SrcIP()
			if err != nil {
				return nil, "", fmt.Errorf("reading src_ip: %w", err)
			}
			parts[i] = val
			fields[fieldName] = val
		case "DstIP":
			val, err := flow.DstIP()
			if err != nil {
				return nil, "", fmt.Errorf("reading dst_ip: %w", err)
			}
			parts[i] = val
			fields[fieldName] = val
		case "SrcPort":
			val := flow.SrcPort
			parts[i] = strconv.Itoa(int(val))
			fields[fieldName] = val
		case "DstPort":
			val := flow.DstPort
			parts[i] = strconv.Itoa(int(val))
			fields[fieldName] = val
		case "Protocol":
			val := flow.Protocol
			parts[i] = strconv.Itoa(int(val))
			fields[fieldName] = val
		default:
			return nil, "", fmt.Errorf("unknown key field: %s", fieldName)
		}
	}
	return fields, strings.Join(parts, "-"), nil
}
