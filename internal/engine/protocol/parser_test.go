package protocol

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

func buildPacket(t *testing.T, ip *layers.IPv4, transport gopacket.SerializableLayer) []byte {
	t.Helper()

	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
		EthernetType: layers.EthernetTypeIPv4,
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, transport, gopacket.Payload([]byte("payload"))); err != nil {
		t.Fatalf("Failed to serialize packet: %v", err)
	}
	return buf.Bytes()
}

func TestParsePacket_UDP(t *testing.T) {
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.ParseIP("192.168.0.1"),
		DstIP:    net.ParseIP("8.8.8.8"),
	}
	udp := &layers.UDP{SrcPort: 12345, DstPort: 53}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		t.Fatalf("Failed to set network layer: %v", err)
	}

	info, err := ParsePacket(buildPacket(t, ip, udp))
	if err != nil {
		t.Fatalf("ParsePacket failed: %v", err)
	}

	if got := info.FiveTuple.SrcIP.String(); got != "192.168.0.1" {
		t.Errorf("Expected SrcIP 192.168.0.1, got %s", got)
	}
	if got := info.FiveTuple.DstIP.String(); got != "8.8.8.8" {
		t.Errorf("Expected DstIP 8.8.8.8, got %s", got)
	}
	if info.FiveTuple.SrcPort != 12345 || info.FiveTuple.DstPort != 53 {
		t.Errorf("Unexpected ports: %d -> %d", info.FiveTuple.SrcPort, info.FiveTuple.DstPort)
	}
	if info.FiveTuple.Protocol != uint8(layers.IPProtocolUDP) {
		t.Errorf("Expected UDP protocol, got %d", info.FiveTuple.Protocol)
	}
	if info.Length == 0 {
		t.Error("Length should not be 0")
	}
}

func TestParsePacket_TCP(t *testing.T) {
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.ParseIP("10.0.0.2"),
		DstIP:    net.ParseIP("10.0.0.3"),
	}
	tcp := &layers.TCP{SrcPort: 55555, DstPort: 443, SYN: true, Window: 14600}
	if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
		t.Fatalf("Failed to set network layer: %v", err)
	}

	info, err := ParsePacket(buildPacket(t, ip, tcp))
	if err != nil {
		t.Fatalf("ParsePacket failed: %v", err)
	}
	if info.FiveTuple.DstPort != 443 {
		t.Errorf("Expected DstPort 443, got %d", info.FiveTuple.DstPort)
	}
}

func TestParsePacket_NonIPv4(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		SourceProtAddress: []byte{192, 168, 0, 1},
		DstHwAddress:      []byte{0, 0, 0, 0, 0, 0},
		DstProtAddress:    []byte{192, 168, 0, 2},
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, arp); err != nil {
		t.Fatalf("Failed to serialize ARP packet: %v", err)
	}

	if _, err := ParsePacket(buf.Bytes()); err == nil {
		t.Error("Expected error for non-IPv4 packet")
	}
}
