package validate

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_SetThenGet(t *testing.T) {
	f := NewField("src_ip", &IPv4Validator{}, zerolog.Nop())

	require.NoError(t, f.Set("2.2.2.2"))

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "2.2.2.2", got)
}

func TestField_GetBeforeSet(t *testing.T) {
	f := NewField("dst_ip", &IPv4Validator{}, zerolog.Nop())

	_, err := f.Get()
	require.Error(t, err)

	var uerr *UnsetFieldError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "dst_ip", uerr.Field)
	assert.False(t, f.IsSet())
}

func TestField_FailedSetLeavesValueUnchanged(t *testing.T) {
	f := NewField("dst_ip", &IPv4Validator{}, zerolog.Nop())

	// Rejected write on an unset field leaves it unset.
	err := f.Set("5.5.5.")
	require.Error(t, err)
	assert.False(t, f.IsSet())
	_, err = f.Get()
	require.Error(t, err)

	// Rejected write on a set field keeps the prior value.
	require.NoError(t, f.Set("2.2.2.2"))
	err = f.Set(5555)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "2.2.2.2", got)
}

func TestField_Overwrite(t *testing.T) {
	f := NewField("src_ip", &IPv4Validator{}, zerolog.Nop())

	require.NoError(t, f.Set("1.1.1.1"))
	require.NoError(t, f.Set("2.2.2.2"))

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "2.2.2.2", got)
}

func TestField_LogsAccess(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	f := NewField("src_ip", &IPv4Validator{}, log)
	require.NoError(t, f.Set("2.2.2.2"))
	_, err := f.Get()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `set: \"2.2.2.2\"`)
	assert.Contains(t, out, `get: \"2.2.2.2\"`)
	assert.Contains(t, out, `"field":"src_ip"`)
	assert.Contains(t, out, `"level":"info"`)

	// A rejected write must not be logged as an accepted one.
	buf.Reset()
	require.Error(t, f.Set("5.5.5."))
	assert.NotContains(t, buf.String(), "set:")
}
