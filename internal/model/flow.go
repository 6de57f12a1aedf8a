package model

import (
	"FlowVet/internal/validate"
	"time"

	"github.com/rs/zerolog"
)

// Flow is a validated flow record. The address fields are validated
// fields: every read and write goes through the bound validator and is
// logged. The remaining attributes are plain pipeline metadata.
//
// A Flow instance is owned by a single worker at a time; it carries no
// internal locking.
type Flow struct {
	srcIP *validate.Field
	dstIP *validate.Field

	SrcPort   uint16
	DstPort   uint16
	Protocol  uint8
	Timestamp time.Time
	Length    int
}

// SetSrcIP writes the source address through its validator.
func (f *Flow) SetSrcIP(value interface{}) error { return f.srcIP.Set(value) }

// SrcIP reads the validated source address.
func (f *Flow) SrcIP() (string, error) { return f.srcIP.Get() }

// SetDstIP writes the destination address through its validator.
func (f *Flow) SetDstIP(value interface{}) error { return f.dstIP.Set(value) }

// DstIP reads the validated destination address.
func (f *Flow) DstIP() (string, error) { return f.dstIP.Get() }

// FlowFactory builds Flow records with the configured validators bound
// to their address fields.
type FlowFactory struct {
	srcValidator validate.Validator
	dstValidator validate.Validator
	log          zerolog.Logger
}

// NewFlowFactory creates a factory binding the given validators to the
// src_ip and dst_ip fields of every Flow it produces.
func NewFlowFactory(srcValidator, dstValidator validate.Validator, log zerolog.Logger) *FlowFactory {
	return &FlowFactory{
		srcValidator: srcValidator,
		dstValidator: dstValidator,
		log:          log,
	}
}

// New returns a Flow with both address fields unset.
func (ff *FlowFactory) New() *Flow {
	return &Flow{
		srcIP: validate.NewField("src_ip", ff.srcValidator, ff.log),
		dstIP: validate.NewField("dst_ip", ff.dstValidator, ff.log),
	}
}
