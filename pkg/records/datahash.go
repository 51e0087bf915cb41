package records

import (
	"encoding/binary"
	"fmt"
)

// DataHashRecordSize is the encoded size of a DataHashRecord.
// Layout: [ContentHash(32)][PayloadLen(8)][PayloadOffset(8)], little-endian.
const DataHashRecordSize = HashSize + 8 + 8

// DataHashRecord is the value stored in the data_records column family: the
// content hash of a stored payload plus where that payload lives in the data
// log.
type DataHashRecord struct {
	ContentHash   [HashSize]byte // hash of the payload contents
	PayloadLen    uint64         // payload length in bytes
	PayloadOffset uint64         // byte offset of the payload in the data log
}

// DecodeDataHashRecord deserializes a data hash record from its fixed
// 48-byte layout.
func DecodeDataHashRecord(data []byte) (*DataHashRecord, error) {
	if len(data) != DataHashRecordSize {
		return nil, fmt.Errorf("data hash record must be %d bytes, got %d", DataHashRecordSize, len(data))
	}

	r := &DataHashRecord{}
	copy(r.ContentHash[:], data[0:HashSize])
	r.PayloadLen = binary.LittleEndian.Uint64(data[HashSize:])
	r.PayloadOffset = binary.LittleEndian.Uint64(data[HashSize+8:])
	return r, nil
}

// Encode serializes the record into its fixed 48-byte layout.
func (r *DataHashRecord) Encode() []byte {
	buf := make([]byte, DataHashRecordSize)
	copy(buf[0:], r.ContentHash[:])
	binary.LittleEndian.PutUint64(buf[HashSize:], r.PayloadLen)
	binary.LittleEndian.PutUint64(buf[HashSize+8:], r.PayloadOffset)
	return buf
}
