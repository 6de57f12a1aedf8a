package probe

import (
	v1 "FlowVet/api/gen/v1"
	"FlowVet/internal/config"
	"FlowVet/internal/model"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Publisher is responsible for publishing packet data to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
	log     zerolog.Logger
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.ProbeConfig, log zerolog.Logger) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", cfg.NATSURL).Msg("Connected to NATS server")
	return &Publisher{nc: nc, subject: cfg.Subject, log: log}, nil
}

// Publish serializes a PacketInfo to Protobuf and publishes it to the configured NATS subject.
func (p *Publisher) Publish(packetInfo *model.PacketInfo) error {
	pbPacket := &v1.PacketInfo{
		Timestamp: timestamppb.New(packetInfo.Timestamp),
		FiveTuple: &v1.FiveTuple{
			SrcIp:    []byte(packetInfo.FiveTuple.SrcIP),
			DstIp:    []byte(packetInfo.FiveTuple.DstIP),
			SrcPort:  uint32(packetInfo.FiveTuple.SrcPort),
			DstPort:  uint32(packetInfo.FiveTuple.DstPort),
			Protocol: uint32(packetInfo.FiveTuple.Protocol),
		},
		Length: uint64(packetInfo.Length),
	}

	data, err := proto.Marshal(pbPacket)
	if err != nil {
		return err
	}

	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		p.log.Info().Msg("NATS connection drained and closed")
	}
}
