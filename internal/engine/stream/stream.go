package stream

import (
	v1 "FlowVet/api/gen/v1"
	"FlowVet/internal/config"
	"FlowVet/internal/engine/manager"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/proto"
)

// Engine consumes packets from NATS and feeds them to a Manager for
// validation and aggregation.
type Engine struct {
	nc           *nats.Conn
	sub          *nats.Subscription
	manager      *manager.Manager
	inputChannel chan<- *v1.PacketInfo
	natsURL      string
	natsSubject  string
	log          zerolog.Logger
}

// NewEngine creates a new real-time stream engine.
func NewEngine(cfg *config.Config, log zerolog.Logger) (*Engine, error) {
	mgr, err := manager.NewManager(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Engine{
		manager:      mgr,
		inputChannel: mgr.InputChannel(),
		natsURL:      cfg.Probe.NATSURL,
		natsSubject:  cfg.Probe.Subject,
		log:          log,
	}, nil
}

// Start connects to NATS, starts the underlying manager, and begins processing messages.
func (e *Engine) Start() {
	e.log.Info().Str("url", e.natsURL).Msg("Stream engine starting")
	nc, err := nats.Connect(e.natsURL)
	if err != nil {
		e.log.Fatal().Err(err).Msg("Stream engine failed to connect to NATS")
	}
	e.nc = nc

	// The manager starts its own worker pool and snapshotter.
	e.manager.Start()

	e.sub, err = e.nc.Subscribe(e.natsSubject, e.handlePacket)
	if err != nil {
		e.log.Fatal().Err(err).Msg("Stream engine failed to subscribe")
	}
	e.log.Info().Str("subject", e.natsSubject).Msg("Stream engine subscribed")
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop() {
	e.log.Info().Msg("Stream engine stopping...")
	if e.sub != nil {
		e.sub.Unsubscribe()
	}
	if e.nc != nil {
		e.nc.Close()
	}
	// Stop the underlying manager, which will close the input channel
	// and wait for workers to finish before taking a final snapshot.
	e.manager.Stop()
	e.log.Info().Msg("Stream engine stopped")
}

// handlePacket decodes the message and passes it to the manager's channel.
func (e *Engine) handlePacket(msg *nats.Msg) {
	var pbPacket v1.PacketInfo
	if err := proto.Unmarshal(msg.Data, &pbPacket); err != nil {
		e.log.Error().Err(err).Msg("Error unmarshalling protobuf")
		return
	}

	e.inputChannel <- &pbPacket
}
