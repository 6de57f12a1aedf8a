package audit

import (
	"bytes"
	"math/bits"
	"math/rand/v2"
	"sort"
)

const (
	defaultWidth = 1 << 16
	defaultDepth = 3
)

const (
	c1_32 uint32 = 0xcc9e2d51
	c2_32 uint32 = 0x1b873593
)

// murmur3 is the 32-bit MurmurHash3, used to pick sketch buckets.
func murmur3(data []byte, seed uint32) (h1 uint32) {
	h1 = seed
	clen := uint32(len(data))
	for len(data) >= 4 {
		k1 := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
		data = data[4:]

		k1 *= c1_32
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2_32

		h1 ^= k1
		h1 = bits.RotateLeft32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}
	var k1 uint32
	switch len(data) {
	case 3:
		k1 ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(data[0])
		k1 *= c1_32
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2_32
		h1 ^= k1
	}

	h1 ^= uint32(clen)

	h1 ^= h1 >> 16
	h1 *= 0x85ebca6b
	h1 ^= h1 >> 13
	h1 *= 0xc2b2ae35
	h1 ^= h1 >> 16

	return h1
}

type bucket struct {
	fp []byte
	c  uint32
}

// CountMin is a fingerprinting count-min sketch. It keeps approximate
// counts of rejected values in bounded memory so the audit tracker can
// surface heavy offenders without storing every bad value it sees.
type CountMin struct {
	w, d  uint32
	seed  []uint32
	table [][]bucket
}

// NewCountMin creates a sketch with the given dimensions. Zero values
// fall back to the defaults.
func NewCountMin(width, depth uint32) *CountMin {
	if width == 0 {
		width = defaultWidth
	}
	if depth == 0 {
		depth = defaultDepth
	}

	seed := make([]uint32, depth)
	for i := range seed {
		seed[i] = rand.Uint32()
	}

	table := make([][]bucket, depth)
	for i := range table {
		table[i] = make([]bucket, width)
	}

	return &CountMin{
		w:     width,
		d:     depth,
		seed:  seed,
		table: table,
	}
}

// Insert records one occurrence of the given key.
func (t *CountMin) Insert(key []byte) {
	for i := 0; i < int(t.d); i++ {
		index := murmur3(key, t.seed[i]) % t.w
		b := &t.table[i][index]
		if b.c == 0 {
			b.fp = append(b.fp[:0], key...)
			b.c = 1
		} else if bytes.Equal(b.fp, key) {
			b.c++
		} else {
			b.c--
			if b.c == 0 {
				b.fp = append(b.fp[:0], key...)
				b.c = 1
			}
		}
	}
}

// Query returns the approximate count for the given key.
func (t *CountMin) Query(key []byte) uint32 {
	sz := uint32(0)
	for i := 0; i < int(t.d); i++ {
		index := murmur3(key, t.seed[i]) % t.w
		if bytes.Equal(t.table[i][index].fp, key) {
			sz = max(sz, t.table[i][index].c)
		}
	}
	return sz
}

// HeavyRecord is one surviving fingerprint and its approximate count.
type HeavyRecord struct {
	Key   string
	Count uint32
}

// HeavyHitters returns the top-k surviving fingerprints by count.
func (t *CountMin) HeavyHitters(k int) []HeavyRecord {
	hh := make(map[string]uint32)
	for i := 0; i < int(t.d); i++ {
		for j := 0; j < int(t.w); j++ {
			b := t.table[i][j]
			if b.c == 0 {
				continue
			}
			key := string(b.fp)
			if b.c > hh[key] {
				hh[key] = b.c
			}
		}
	}

	records := make([]HeavyRecord, 0, len(hh))
	for key, count := range hh {
		records = append(records, HeavyRecord{Key: key, Count: count})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Count > records[j].Count
	})
	if k > 0 && len(records) > k {
		records = records[:k]
	}
	return records
}

// Reset clears all buckets for a new measurement period.
func (t *CountMin) Reset() {
	for i := range t.table {
		for j := range t.table[i] {
			t.table[i][j].fp = t.table[i][j].fp[:0]
			t.table[i][j].c = 0
		}
	}
}
