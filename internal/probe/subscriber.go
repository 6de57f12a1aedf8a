package probe

import (
	"net"

	v1 "FlowVet/api/gen/v1"
	"FlowVet/internal/config"
	"FlowVet/internal/model"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/proto"
)

// PacketHandler is a function that processes a received PacketInfo.
type PacketHandler func(info model.PacketInfo)

// Subscriber is responsible for subscribing to a NATS subject and processing messages.
type Subscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	subject string
	log     zerolog.Logger
}

// NewSubscriber creates a new NATS subscriber.
func NewSubscriber(cfg config.ProbeConfig, log zerolog.Logger) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", cfg.NATSURL).Msg("Connected to NATS server")
	return &Subscriber{nc: nc, subject: cfg.Subject, log: log}, nil
}

// Start subscribes to the configured subject and starts processing messages with the provided handler.
func (s *Subscriber) Start(handler PacketHandler) error {
	sub, err := s.nc.Subscribe(s.subject, func(msg *nats.Msg) {
		var pbPacket v1.PacketInfo
		if err := proto.Unmarshal(msg.Data, &pbPacket); err != nil {
			s.log.Error().Err(err).Msg("Error unmarshalling protobuf")
			return
		}

		info := model.PacketInfo{
			Timestamp: pbPacket.Timestamp.AsTime(),
			Length:    int(pbPacket.Length),
			FiveTuple: model.FiveTuple{
				SrcIP:    net.IP(pbPacket.FiveTuple.SrcIp),
				DstIP:    net.IP(pbPacket.FiveTuple.DstIp),
				SrcPort:  uint16(pbPacket.FiveTuple.SrcPort),
				DstPort:  uint16(pbPacket.FiveTuple.DstPort),
				Protocol: uint8(pbPacket.FiveTuple.Protocol),
			},
		}
		handler(info)
	})
	if err != nil {
		return err
	}
	s.sub = sub
	s.log.Info().Str("subject", s.subject).Msg("Subscribed, waiting for messages")
	return nil
}

// Close unsubscribes and closes the NATS connection.
func (s *Subscriber) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
		s.log.Info().Msg("NATS connection closed")
	}
}
