package pcap

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"FlowVet/internal/model"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/rs/zerolog"
)

// writeTestPcap produces a capture file with n TCP packets.
func writeTestPcap(t *testing.T, path string, n int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create pcap file: %v", err)
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("failed to write pcap header: %v", err)
	}

	for i := 0; i < n; i++ {
		eth := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ip := &layers.IPv4{
			SrcIP:    net.IP{10, 0, 0, byte(i + 1)},
			DstIP:    net.IP{192, 168, 1, 1},
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
		}
		tcp := &layers.TCP{SrcPort: 12345, DstPort: 443, SYN: true}
		tcp.SetNetworkLayerForChecksum(ip)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
		if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp); err != nil {
			t.Fatalf("failed to serialize packet: %v", err)
		}

		ci := gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		if err := w.WritePacket(ci, buf.Bytes()); err != nil {
			t.Fatalf("failed to write packet: %v", err)
		}
	}
}

func TestReader_ReadPackets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pcap")
	writeTestPcap(t, path, 3)

	reader, err := NewReader(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create reader: %v", err)
	}
	defer reader.Close()

	out := make(chan *model.PacketInfo)
	go reader.ReadPackets(out)

	count := 0
	for info := range out {
		if info.FiveTuple.DstPort != 443 {
			t.Errorf("expected dst port 443, got %d", info.FiveTuple.DstPort)
		}
		count++
	}

	if count != 3 {
		t.Errorf("expected to read 3 packets, got %d", count)
	}
}

func TestNewReader_MissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.pcap"), zerolog.Nop()); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
