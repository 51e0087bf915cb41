// Package decode re-interprets an opaque stored value as a set of candidate
// readings. The column family's value format is not self-describing, so no
// single reading is authoritative: every applicable candidate is attempted
// independently and the whole set is reported for the operator to judge.
package decode

import (
	"encoding/binary"
	"encoding/hex"
	"unicode/utf8"

	"github.com/holiman/uint256"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/rockcheck/pkg/records"
	"github.com/ssargent/rockcheck/pkg/store"
)

// ksuidLength is the byte width of a KSUID value.
const ksuidLength = 20

// Report is the set of candidate interpretations of one stored value. A nil
// candidate means the value's length or content ruled it out, not that the
// decode as a whole failed. A structured decode failure is recorded on the
// report and never blocks the remaining candidates.
type Report struct {
	Raw []byte
	Hex string

	Merkle    *records.MerkleRecord
	MerkleErr error

	DataHash    *records.DataHashRecord
	DataHashErr error

	U32   *uint32
	U64   *uint64
	U256  *uint256.Int
	KSUID *ksuid.KSUID

	Text      string
	TextValid bool
}

// Decode interprets value under every candidate reading that applies. It
// never fails. The column family name selects which structured decode is
// attempted; the generic candidates are attempted regardless.
func Decode(value []byte, cf string) *Report {
	r := &Report{
		Raw: value,
		Hex: hex.EncodeToString(value),
	}

	switch cf {
	case store.CFMerkleRecords:
		r.Merkle, r.MerkleErr = records.DecodeMerkleRecord(value)
	case store.CFDataRecords:
		r.DataHash, r.DataHashErr = records.DecodeDataHashRecord(value)
	}

	switch len(value) {
	case 4:
		v := binary.LittleEndian.Uint32(value)
		r.U32 = &v
	case 8:
		v := binary.LittleEndian.Uint64(value)
		r.U64 = &v
	case ksuidLength:
		if id, err := ksuid.FromBytes(value); err == nil {
			r.KSUID = &id
		}
	case 32:
		r.U256 = wordsToU256(value)
	}

	if utf8.Valid(value) {
		r.Text = string(value)
		r.TextValid = true
	}

	return r
}

// wordsToU256 reads a 32-byte value as four little-endian u64 limbs, least
// significant first, matching the key codec's [u64; 4] convention.
func wordsToU256(b []byte) *uint256.Int {
	z := &uint256.Int{}
	for i := 0; i < 4; i++ {
		z[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return z
}
