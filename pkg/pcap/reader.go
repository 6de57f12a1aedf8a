package pcap

import (
	"os"

	"FlowVet/internal/engine/protocol"
	"FlowVet/internal/model"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
	"github.com/rs/zerolog"
)

// Reader replays packets from a capture file.
type Reader struct {
	file   *os.File
	handle *pcapgo.Reader
	log    zerolog.Logger
}

// NewReader opens a pcap file for offline replay.
func NewReader(filePath string, log zerolog.Logger) (*Reader, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	handle, err := pcapgo.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Reader{file: f, handle: handle, log: log}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() {
	r.file.Close()
}

// ReadPackets parses every packet in the file and sends the results to
// out. Packets the parser cannot decode are logged and skipped. The
// channel is closed when the file is exhausted.
func (r *Reader) ReadPackets(out chan<- *model.PacketInfo) {
	defer close(out)

	source := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	for packet := range source.Packets() {
		info, err := protocol.ParsePacket(packet.Data())
		if err != nil {
			r.log.Debug().Err(err).Msg("skipping undecodable packet")
			continue
		}
		out <- info
	}
}
