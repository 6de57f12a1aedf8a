package config

import (
	"fmt"
	"os"

	"FlowVet/internal/logger"

	"gopkg.in/yaml.v3"
)

// FieldBindingDef binds a record field to a named validator.
type FieldBindingDef struct {
	Field     string `yaml:"field"`
	Validator string `yaml:"validator"`
}

// ValidationConfig holds the field-to-validator bindings for ingested
// flow records. Missing bindings default to the loose "ipv4" validator.
type ValidationConfig struct {
	Bindings []FieldBindingDef `yaml:"bindings"`
}

// ExactTaskDef defines a single exact aggregation task.
type ExactTaskDef struct {
	Name      string   `yaml:"name"`
	NumShards uint32   `yaml:"num_shards"`
	KeyFields []string `yaml:"key_fields"`
}

// GobConfig holds settings for the gob file writer.
type GobConfig struct {
	RootPath string `yaml:"root_path"`
}

// ClickHouseConfig holds connection settings for ClickHouse.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WriterDef defines a single snapshot writer.
type WriterDef struct {
	Type             string           `yaml:"type"`
	Enabled          bool             `yaml:"enabled"`
	SnapshotInterval string           `yaml:"snapshot_interval"`
	Gob              GobConfig        `yaml:"gob"`
	ClickHouse       ClickHouseConfig `yaml:"clickhouse"`
}

// EngineConfig holds the configuration for the validation engine.
type EngineConfig struct {
	Types             []string       `yaml:"types"`
	Period            string         `yaml:"period"`
	NumWorkers        int            `yaml:"num_workers"`
	SizeOfFlowChannel int            `yaml:"size_of_flow_channel"`
	Tasks             []ExactTaskDef `yaml:"tasks"`
	Writers           []WriterDef    `yaml:"writers"`
}

// AuditConfig holds settings for the validation audit tracker.
type AuditConfig struct {
	SketchWidth uint32 `yaml:"sketch_width"`
	SketchDepth uint32 `yaml:"sketch_depth"`
	TopK        int    `yaml:"top_k"`
}

// ProbeConfig holds settings for the capture probe and its transport.
type ProbeConfig struct {
	NATSURL     string `yaml:"nats_url"`
	Subject     string `yaml:"subject"`
	Interface   string `yaml:"interface"`
	SnapshotLen int32  `yaml:"snapshot_len"`
	Promiscuous bool   `yaml:"promiscuous"`
}

// APIConfig holds the listen addresses for the API server.
type APIConfig struct {
	HTTPListenAddr string `yaml:"http_listen_addr"`
	GrpcListenAddr string `yaml:"grpc_listen_addr"`
}

// AlerterRule defines a single threshold rule evaluated by the alerter.
type AlerterRule struct {
	Name      string  `yaml:"name"`
	TaskName  string  `yaml:"task_name"`
	Metric    string  `yaml:"metric"`
	Operator  string  `yaml:"operator"`
	Threshold float64 `yaml:"threshold"`
}

// AlerterConfig holds the alerter settings.
type AlerterConfig struct {
	Enabled       bool          `yaml:"enabled"`
	CheckInterval string        `yaml:"check_interval"`
	Rules         []AlerterRule `yaml:"rules"`
}

// SMTPConfig holds settings for the email notifier.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Log        logger.Config    `yaml:"log"`
	Validation ValidationConfig `yaml:"validation"`
	Engine     EngineConfig     `yaml:"engine"`
	Audit      AuditConfig      `yaml:"audit"`
	Probe      ProbeConfig      `yaml:"probe"`
	API        APIConfig        `yaml:"api"`
	Alerter    AlerterConfig    `yaml:"alerter"`
	SMTP       SMTPConfig       `yaml:"smtp"`
}

// ValidatorFor returns the configured validator name for a field, or
// the loose default.
func (c *ValidationConfig) ValidatorFor(field string) string {
	for _, b := range c.Bindings {
		if b.Field == field {
			return b.Validator
		}
	}
	return "ipv4"
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return &cfg, nil
}
