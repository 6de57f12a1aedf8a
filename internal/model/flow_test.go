package model

import (
	"FlowVet/internal/validate"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) *FlowFactory {
	t.Helper()
	ipv4, err := validate.Lookup("ipv4")
	require.NoError(t, err)
	return NewFlowFactory(ipv4, ipv4, zerolog.Nop())
}

func TestFlow_ValidatedAddressFields(t *testing.T) {
	flow := newTestFactory(t).New()

	require.NoError(t, flow.SetSrcIP("2.2.2.2"))

	err := flow.SetDstIP("5.5.5.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5.5.5. is not a valid ipv4 address")

	src, err := flow.SrcIP()
	require.NoError(t, err)
	assert.Equal(t, "2.2.2.2", src)

	// The rejected write left dst_ip unset.
	_, err = flow.DstIP()
	var uerr *validate.UnsetFieldError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "dst_ip", uerr.Field)
}

func TestFlow_NonStringAddressRejected(t *testing.T) {
	flow := newTestFactory(t).New()

	err := flow.SetSrcIP(5555)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}
