// Package records defines the fixed binary layouts of the structured values
// this tool knows how to decode: merkle tree node records and data hash
// records. Both layouts are little-endian and fixed-size; a length mismatch
// is a decode error.
package records

import (
	"fmt"
)

// HashSize is the width of every hash field, in bytes.
const HashSize = 32

// MerkleRecordSize is the encoded size of a MerkleRecord.
// Layout: [Parent(32)][Left(32)][Right(32)][DataHash(32)]
const MerkleRecordSize = 4 * HashSize

// MerkleRecord is the value stored in the merkle_records column family: a
// tree node's three hash pointers plus the hash of the data it commits to.
type MerkleRecord struct {
	Parent   [HashSize]byte // hash of the parent node, zero at the root
	Left     [HashSize]byte // hash of the left child, zero at a leaf
	Right    [HashSize]byte // hash of the right child, zero at a leaf
	DataHash [HashSize]byte // hash of the stored data this node commits to
}

// DecodeMerkleRecord deserializes a merkle record from its fixed 128-byte
// layout.
func DecodeMerkleRecord(data []byte) (*MerkleRecord, error) {
	if len(data) != MerkleRecordSize {
		return nil, fmt.Errorf("merkle record must be %d bytes, got %d", MerkleRecordSize, len(data))
	}

	r := &MerkleRecord{}
	copy(r.Parent[:], data[0:HashSize])
	copy(r.Left[:], data[HashSize:2*HashSize])
	copy(r.Right[:], data[2*HashSize:3*HashSize])
	copy(r.DataHash[:], data[3*HashSize:4*HashSize])
	return r, nil
}

// Encode serializes the record into its fixed 128-byte layout.
func (r *MerkleRecord) Encode() []byte {
	buf := make([]byte, MerkleRecordSize)
	copy(buf[0:], r.Parent[:])
	copy(buf[HashSize:], r.Left[:])
	copy(buf[2*HashSize:], r.Right[:])
	copy(buf[3*HashSize:], r.DataHash[:])
	return buf
}
