package exact

import (
	"context"
	"fmt"
	"time"

	"FlowVet/internal/config"
	"FlowVet/internal/engine/audit"
	"FlowVet/internal/engine/impl/exact/statistic"
	"FlowVet/internal/model"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/rs/zerolog"
)

const createFlowTableStatement = `
CREATE TABLE IF NOT EXISTS flow_records (
    Timestamp   DateTime,
    TaskName    String,
    SrcIP       Nullable(String),
    DstIP       Nullable(String),
    SrcPort     Nullable(UInt16),
    DstPort     Nullable(UInt16),
    Protocol    Nullable(UInt8),
    StartTime   DateTime,
    EndTime     DateTime,
    ByteCount   UInt64,
    PacketCount UInt64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (TaskName, Timestamp);
`

const createRejectTableStatement = `
CREATE TABLE IF NOT EXISTS validation_rejects (
    Timestamp DateTime,
    Field     String,
    Reason    String,
    Count     UInt64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (Field, Timestamp);
`

const createOffenderTableStatement = `
CREATE TABLE IF NOT EXISTS validation_offenders (
    Timestamp DateTime,
    Offender  String,
    Count     UInt32
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (Timestamp, Count);
`

// ClickHouseWriter implements the model.Writer interface for ClickHouse.
// It persists both flow snapshots and audit snapshots.
type ClickHouseWriter struct {
	conn     driver.Conn
	interval time.Duration
	log      zerolog.Logger
}

// NewClickHouseWriter creates a new ClickHouse writer and ensures the
// target tables exist.
func NewClickHouseWriter(cfg config.ClickHouseConfig, interval time.Duration, log zerolog.Logger) (model.Writer, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	for _, stmt := range []string{createFlowTableStatement, createRejectTableStatement, createOffenderTableStatement} {
		if err := conn.Exec(context.Background(), stmt); err != nil {
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}
	log.Info().Msg("Connected to ClickHouse and ensured tables exist")

	return &ClickHouseWriter{conn: conn, interval: interval, log: log}, nil
}

// GetInterval returns the configured snapshot interval for this writer.
func (w *ClickHouseWriter) GetInterval() time.Duration {
	return w.interval
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: false,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})

	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// Write inserts a snapshot payload into the appropriate tables.
func (w *ClickHouseWriter) Write(payload interface{}, timestamp string) error {
	snapshotTime, _ := time.Parse("2006-01-02_15-04-05", timestamp)

	switch snapshot := payload.(type) {
	case statistic.SnapshotData:
		return w.writeFlows(snapshot, snapshotTime)
	case audit.Snapshot:
		return w.writeAudit(snapshot, snapshotTime)
	default:
		return fmt.Errorf("invalid payload type for ClickHouse Writer: %T", payload)
	}
}

func (w *ClickHouseWriter) writeFlows(snapshot statistic.SnapshotData, snapshotTime time.Time) error {
	batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO flow_records")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	flowCount := 0
	for _, shard := range snapshot.Shards {
		for _, flow := range shard.Flows {
			flowCount++
			err = batch.Append(
				snapshotTime,
				snapshot.TaskName,
				getNullableField(flow.Fields, "SrcIP"),
				getNullableField(flow.Fields, "DstIP"),
				getNullableField(flow.Fields, "SrcPort"),
				getNullableField(flow.Fields, "DstPort"),
				getNullableField(flow.Fields, "Protocol"),
				flow.StartTime,
				flow.EndTime,
				flow.ByteCount,
				flow.PacketCount,
			)
			if err != nil {
				return fmt.Errorf("failed to append flow to batch: %w", err)
			}
		}
	}

	if flowCount == 0 {
		return nil
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}
	w.log.Info().Str("task", snapshot.TaskName).Int("flows", flowCount).Msg("Wrote flow snapshot to ClickHouse")
	return nil
}

func (w *ClickHouseWriter) writeAudit(snapshot audit.Snapshot, snapshotTime time.Time) error {
	if len(snapshot.Counts) > 0 {
		batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO validation_rejects")
		if err != nil {
			return fmt.Errorf("failed to prepare reject batch: %w", err)
		}
		for _, c := range snapshot.Counts {
			if err := batch.Append(snapshotTime, c.Field, c.Reason, c.Count); err != nil {
				return fmt.Errorf("failed to append reject to batch: %w", err)
			}
		}
		if err := batch.Send(); err != nil {
			return fmt.Errorf("failed to send reject batch: %w", err)
		}
	}

	if len(snapshot.HeavyOffenders) > 0 {
		batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO validation_offenders")
		if err != nil {
			return fmt.Errorf("failed to prepare offender batch: %w", err)
		}
		for _, o := range snapshot.HeavyOffenders {
			if err := batch.Append(snapshotTime, o.Key, o.Count); err != nil {
				return fmt.Errorf("failed to append offender to batch: %w", err)
			}
		}
		if err := batch.Send(); err != nil {
			return fmt.Errorf("failed to send offender batch: %w", err)
		}
	}

	w.log.Info().
		Uint64("accepted", snapshot.TotalAccepted).
		Uint64("rejected", snapshot.TotalRejected).
		Msg("Wrote audit snapshot to ClickHouse")
	return nil
}

// getNullableField returns a pointer suitable for a Nullable column,
// or nil when the field was not part of the task's key.
func getNullableField(fields map[string]interface{}, name string) interface{} {
	val, ok := fields[name]
	if !ok {
		return nil
	}
	switch v := val.(type) {
	case string:
		return &v
	case uint16:
		return &v
	case uint8:
		return &v
	default:
		return nil
	}
}
