package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv4Validator_Accepts(t *testing.T) {
	v := &IPv4Validator{}

	accepted := []string{
		"2.2.2.2",
		"0.0.0.0",
		"192.168.0.1",
		"255.255.255.255",
		// Shape check only: octets above 255 pass.
		"999.999.999.999",
		"256.1.1.1",
	}
	for _, s := range accepted {
		assert.NoError(t, v.Validate(s), "expected %q to be accepted", s)
	}
}

func TestIPv4Validator_RejectsBadShape(t *testing.T) {
	v := &IPv4Validator{}

	rejected := []string{
		"5.5.5.",
		".5.5.5",
		"1.2.3",
		"1.2.3.4.5",
		"1234.1.1.1",
		"a.b.c.d",
		"1.2.3.4 ",
		"",
	}
	for _, s := range rejected {
		err := v.Validate(s)
		require.Error(t, err, "expected %q to be rejected", s)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, s, verr.Value)
		assert.Contains(t, err.Error(), "is not a valid ipv4 address")
	}
}

func TestIPv4Validator_RejectsNonString(t *testing.T) {
	v := &IPv4Validator{}

	err := v.Validate(5555)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 5555, verr.Value)
	assert.Contains(t, err.Error(), "must be a string")
}

func TestIPv4StrictValidator(t *testing.T) {
	v := &IPv4StrictValidator{}

	assert.NoError(t, v.Validate("255.255.255.255"))
	assert.NoError(t, v.Validate("8.8.8.8"))

	err := v.Validate("256.1.1.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a valid ipv4 address")

	require.Error(t, v.Validate("5.5.5."))
	require.Error(t, v.Validate(5555))
}

func TestPortValidator(t *testing.T) {
	v := &PortValidator{}

	assert.NoError(t, v.Validate(80))
	assert.NoError(t, v.Validate(uint16(65535)))
	assert.NoError(t, v.Validate("443"))

	require.Error(t, v.Validate(65536))
	require.Error(t, v.Validate(-1))
	require.Error(t, v.Validate("http"))
}

func TestProtocolValidator(t *testing.T) {
	v := &ProtocolValidator{}

	assert.NoError(t, v.Validate(uint8(6)))
	assert.NoError(t, v.Validate("17"))

	require.Error(t, v.Validate(256))
	require.Error(t, v.Validate("tcp"))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"ipv4", "ipv4_strict", "port", "protocol"} {
		v, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.Name())
	}

	_, err := Lookup("ipv6")
	require.Error(t, err)
}
