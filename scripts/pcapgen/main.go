package main

import (
	"flag"
	"log"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// Generates a synthetic capture file for feeding the engine in replay
// mode. Traffic is drawn from a small pool of flows so aggregation has
// something to merge, with a mix of TCP and UDP.

type flowSpec struct {
	srcIP   net.IP
	dstIP   net.IP
	srcPort uint16
	dstPort uint16
	udp     bool
}

func main() {
	outputFile := flag.String("o", "test.pcap", "Output pcap file path")
	packetCount := flag.Int("c", 1000, "Number of packets to generate")
	flowCount := flag.Int("f", 50, "Number of distinct flows to draw from")
	flag.Parse()

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	pcapWriter := pcapgo.NewWriter(f)
	if err := pcapWriter.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		log.Fatalf("Failed to write pcap header: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	flows := make([]flowSpec, *flowCount)
	for i := range flows {
		flows[i] = flowSpec{
			srcIP:   net.IP{10, byte(rng.Intn(256)), byte(rng.Intn(256)), byte(rng.Intn(256))},
			dstIP:   net.IP{byte(rng.Intn(224)), byte(rng.Intn(256)), byte(rng.Intn(256)), byte(rng.Intn(256))},
			srcPort: uint16(rng.Intn(65535-1024) + 1024),
			dstPort: uint16([]int{80, 443, 53, 8080}[rng.Intn(4)]),
			udp:     rng.Intn(4) == 0,
		}
	}

	log.Printf("Generating %d packets across %d flows into %s...", *packetCount, *flowCount, *outputFile)

	for i := 0; i < *packetCount; i++ {
		if (i+1)%100000 == 0 {
			log.Printf("Generated %d packets...", i+1)
		}

		spec := flows[rng.Intn(len(flows))]
		payload := make([]byte, rng.Intn(1400)+50)
		rng.Read(payload)

		ethLayer := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ipLayer := &layers.IPv4{
			SrcIP:   spec.srcIP,
			DstIP:   spec.dstIP,
			Version: 4,
			TTL:     64,
		}

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}

		if spec.udp {
			ipLayer.Protocol = layers.IPProtocolUDP
			udpLayer := &layers.UDP{
				SrcPort: layers.UDPPort(spec.srcPort),
				DstPort: layers.UDPPort(spec.dstPort),
			}
			udpLayer.SetNetworkLayerForChecksum(ipLayer)
			err = gopacket.SerializeLayers(buf, opts, ethLayer, ipLayer, udpLayer, gopacket.Payload(payload))
		} else {
			ipLayer.Protocol = layers.IPProtocolTCP
			tcpLayer := &layers.TCP{
				SrcPort: layers.TCPPort(spec.srcPort),
				DstPort: layers.TCPPort(spec.dstPort),
				Seq:     rng.Uint32(),
				Ack:     rng.Uint32(),
				ACK:     true,
				Window:  14600,
			}
			tcpLayer.SetNetworkLayerForChecksum(ipLayer)
			err = gopacket.SerializeLayers(buf, opts, ethLayer, ipLayer, tcpLayer, gopacket.Payload(payload))
		}
		if err != nil {
			log.Fatalf("Failed to serialize layers: %v", err)
		}

		ci := gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		if err := pcapWriter.WritePacket(ci, buf.Bytes()); err != nil {
			log.Fatalf("Failed to write packet: %v", err)
		}
	}

	log.Printf("Successfully generated %d packets into %s.", *packetCount, *outputFile)
}
