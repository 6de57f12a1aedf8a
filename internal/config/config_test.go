package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
log:
  level: debug
validation:
  bindings:
    - field: src_ip
      validator: ipv4
    - field: dst_ip
      validator: ipv4_strict
engine:
  period: 5m
  num_workers: 4
  size_of_flow_channel: 1000
  tasks:
    - name: per_source
      num_shards: 64
      key_fields: [SrcIP]
  writers:
    - type: gob
      enabled: true
      snapshot_interval: 1m
      gob:
        root_path: /tmp/flowvet
probe:
  nats_url: nats://127.0.0.1:4222
  subject: fv.packets.raw
api:
  http_listen_addr: ":8080"
  grpc_listen_addr: ":9090"
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "5m", cfg.Engine.Period)
	require.Len(t, cfg.Engine.Tasks, 1)
	assert.Equal(t, []string{"SrcIP"}, cfg.Engine.Tasks[0].KeyFields)
	require.Len(t, cfg.Engine.Writers, 1)
	assert.Equal(t, "gob", cfg.Engine.Writers[0].Type)
	assert.Equal(t, "fv.packets.raw", cfg.Probe.Subject)

	assert.Equal(t, "ipv4", cfg.Validation.ValidatorFor("src_ip"))
	assert.Equal(t, "ipv4_strict", cfg.Validation.ValidatorFor("dst_ip"))
	// Unbound fields fall back to the loose shape validator.
	assert.Equal(t, "ipv4", cfg.Validation.ValidatorFor("next_hop"))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
