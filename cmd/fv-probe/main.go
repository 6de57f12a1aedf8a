package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"FlowVet/internal/config"
	"FlowVet/internal/engine/protocol"
	"FlowVet/internal/logger"
	"FlowVet/internal/model"
	"FlowVet/internal/probe"
	fvpcap "FlowVet/pkg/pcap"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
	"github.com/rs/zerolog"
)

const (
	defaultSnapshotLen int32 = 1600
	promiscuous              = true
	timeout                  = pcap.BlockForever
)

func main() {
	// --- Command-Line Flag Parsing ---
	mode := flag.String("mode", "sub", "Operating mode: 'pub' to capture and publish, 'replay' to publish from a pcap file, 'sub' to subscribe and print.")
	iface := flag.String("iface", "", "Interface to capture packets from (overrides config, pub mode only).")
	pcapFile := flag.String("file", "", "Pcap file to replay (replay mode only).")
	configPath := flag.String("config", "configs/config.yaml", "Path to the config file.")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zl = logger.WithComponent(zl, "fv-probe")

	if *iface != "" {
		cfg.Probe.Interface = *iface
	}
	if cfg.Probe.SnapshotLen <= 0 {
		cfg.Probe.SnapshotLen = defaultSnapshotLen
	}

	// --- Mode Dispatch ---
	switch *mode {
	case "pub":
		runProbe(cfg, zl)
	case "replay":
		runReplay(cfg, *pcapFile, zl)
	case "sub":
		runSubscriber(cfg, zl)
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runProbe contains the logic for capturing packets and publishing them to NATS.
func runProbe(cfg *config.Config, zl zerolog.Logger) {
	if cfg.Probe.Interface == "" {
		zl.Error().Msg("An interface is required for probe mode (-iface or probe.interface in config)")
		flag.Usage()
		os.Exit(1)
	}
	zl.Info().Str("iface", cfg.Probe.Interface).Msg("Starting fv-probe in PROBE mode")

	// Initialize NATS Publisher
	pub, err := probe.NewPublisher(cfg.Probe, zl)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer pub.Close()

	// Open device for live capture
	handle, err := pcap.OpenLive(cfg.Probe.Interface, cfg.Probe.SnapshotLen, promiscuous, timeout)
	if err != nil {
		zl.Fatal().Err(err).Str("iface", cfg.Probe.Interface).Msg("Error opening device")
	}
	defer handle.Close()

	zl.Info().Msg("Capture started successfully. Publishing packets to NATS...")

	// Set up a channel to handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start processing packets in a separate goroutine
	go func() {
		packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
		packetsPublished := 0
		for packet := range packetSource.Packets() {
			info, err := protocol.ParsePacket(packet.Data())
			if err != nil {
				continue // Skip non-IP packets
			}
			if err := pub.Publish(info); err != nil {
				zl.Error().Err(err).Msg("Failed to publish packet")
			}
			packetsPublished++
			if packetsPublished%1000 == 0 {
				zl.Info().Int("count", packetsPublished).Msg("Packets published")
			}
		}
	}()

	// Wait for a shutdown signal
	<-sigChan
	zl.Info().Msg("Shutdown signal received, cleaning up...")
}

// runReplay publishes the packets of a capture file to NATS, so the
// engine can be exercised without live capture privileges.
func runReplay(cfg *config.Config, pcapFile string, zl zerolog.Logger) {
	if pcapFile == "" {
		zl.Error().Msg("A pcap file is required for replay mode (-file)")
		flag.Usage()
		os.Exit(1)
	}
	zl.Info().Str("file", pcapFile).Msg("Starting fv-probe in REPLAY mode")

	pub, err := probe.NewPublisher(cfg.Probe, zl)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to connect to NATS")
	}
	defer pub.Close()

	reader, err := fvpcap.NewReader(pcapFile, zl)
	if err != nil {
		zl.Fatal().Err(err).Str("file", pcapFile).Msg("Failed to open pcap file")
	}
	defer reader.Close()

	packets := make(chan *model.PacketInfo, 1024)
	go reader.ReadPackets(packets)

	published := 0
	for info := range packets {
		if err := pub.Publish(info); err != nil {
			zl.Error().Err(err).Msg("Failed to publish packet")
			continue
		}
		published++
	}
	zl.Info().Int("count", published).Msg("Replay complete")
}

// runSubscriber contains the logic for subscribing to NATS and printing messages.
func runSubscriber(cfg *config.Config, zl zerolog.Logger) {
	zl.Info().Msg("Starting fv-probe in SUBSCRIBER mode...")

	sub, err := probe.NewSubscriber(cfg.Probe, zl)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to create subscriber")
	}
	defer sub.Close()

	handler := func(info model.PacketInfo) {
		zl.Info().Msgf("Received Packet: %+v", info)
	}

	if err := sub.Start(handler); err != nil {
		zl.Fatal().Err(err).Msg("Subscriber failed to start")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zl.Info().Msg("Shutdown signal received, cleaning up...")
}
