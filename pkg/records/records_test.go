package records

import (
	"bytes"
	"testing"
)

func fillHash(b byte) (h [HashSize]byte) {
	for i := range h {
		h[i] = b
	}
	return h
}

func TestMerkleRecord_EncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		record MerkleRecord
	}{
		{
			name: "distinct hashes",
			record: MerkleRecord{
				Parent:   fillHash(0x01),
				Left:     fillHash(0x02),
				Right:    fillHash(0x03),
				DataHash: fillHash(0x04),
			},
		},
		{
			name:   "all zero (root leaf)",
			record: MerkleRecord{},
		},
		{
			name: "high bytes",
			record: MerkleRecord{
				Parent:   fillHash(0xFF),
				Left:     fillHash(0xFE),
				Right:    fillHash(0xFD),
				DataHash: fillHash(0xFC),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := tc.record.Encode()
			if len(encoded) != MerkleRecordSize {
				t.Fatalf("encoded size = %d, want %d", len(encoded), MerkleRecordSize)
			}

			decoded, err := DecodeMerkleRecord(encoded)
			if err != nil {
				t.Fatalf("DecodeMerkleRecord failed: %v", err)
			}

			if *decoded != tc.record {
				t.Errorf("round trip mismatch: got %+v, want %+v", decoded, tc.record)
			}
		})
	}
}

func TestDecodeMerkleRecord_LayoutOffsets(t *testing.T) {
	data := make([]byte, MerkleRecordSize)
	for i := range data {
		data[i] = byte(i / HashSize) // 0,1,2,3 per 32-byte field
	}

	r, err := DecodeMerkleRecord(data)
	if err != nil {
		t.Fatalf("DecodeMerkleRecord failed: %v", err)
	}

	if r.Parent != fillHash(0) {
		t.Errorf("Parent read from wrong offset: %x", r.Parent)
	}
	if r.Left != fillHash(1) {
		t.Errorf("Left read from wrong offset: %x", r.Left)
	}
	if r.Right != fillHash(2) {
		t.Errorf("Right read from wrong offset: %x", r.Right)
	}
	if r.DataHash != fillHash(3) {
		t.Errorf("DataHash read from wrong offset: %x", r.DataHash)
	}
}

func TestDecodeMerkleRecord_LengthMismatch(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "one byte short", data: make([]byte, MerkleRecordSize-1)},
		{name: "one byte long", data: make([]byte, MerkleRecordSize+1)},
		{name: "data hash record size", data: make([]byte, DataHashRecordSize)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeMerkleRecord(tc.data); err == nil {
				t.Errorf("DecodeMerkleRecord accepted %d bytes", len(tc.data))
			}
		})
	}
}

func TestDataHashRecord_EncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		record DataHashRecord
	}{
		{
			name: "typical record",
			record: DataHashRecord{
				ContentHash:   fillHash(0xAB),
				PayloadLen:    4096,
				PayloadOffset: 1 << 40,
			},
		},
		{
			name:   "zero record",
			record: DataHashRecord{},
		},
		{
			name: "max fields",
			record: DataHashRecord{
				ContentHash:   fillHash(0xFF),
				PayloadLen:    ^uint64(0),
				PayloadOffset: ^uint64(0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := tc.record.Encode()
			if len(encoded) != DataHashRecordSize {
				t.Fatalf("encoded size = %d, want %d", len(encoded), DataHashRecordSize)
			}

			decoded, err := DecodeDataHashRecord(encoded)
			if err != nil {
				t.Fatalf("DecodeDataHashRecord failed: %v", err)
			}

			if *decoded != tc.record {
				t.Errorf("round trip mismatch: got %+v, want %+v", decoded, tc.record)
			}
		})
	}
}

func TestDecodeDataHashRecord_LittleEndianFields(t *testing.T) {
	data := make([]byte, DataHashRecordSize)
	data[HashSize] = 0x01   // PayloadLen = 1 in little-endian
	data[HashSize+8] = 0x02 // PayloadOffset = 2 in little-endian

	r, err := DecodeDataHashRecord(data)
	if err != nil {
		t.Fatalf("DecodeDataHashRecord failed: %v", err)
	}

	if r.PayloadLen != 1 {
		t.Errorf("PayloadLen = %d, want 1 (little-endian)", r.PayloadLen)
	}
	if r.PayloadOffset != 2 {
		t.Errorf("PayloadOffset = %d, want 2 (little-endian)", r.PayloadOffset)
	}
	if !bytes.Equal(r.ContentHash[:], make([]byte, HashSize)) {
		t.Errorf("ContentHash = %x, want zeros", r.ContentHash)
	}
}

func TestDecodeDataHashRecord_LengthMismatch(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "hash only", data: make([]byte, HashSize)},
		{name: "one byte short", data: make([]byte, DataHashRecordSize-1)},
		{name: "merkle record size", data: make([]byte, MerkleRecordSize)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeDataHashRecord(tc.data); err == nil {
				t.Errorf("DecodeDataHashRecord accepted %d bytes", len(tc.data))
			}
		})
	}
}
