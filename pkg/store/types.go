package store

import "fmt"

// Backend identifies the storage engine behind a database directory.
type Backend string

const (
	BackendPebble Backend = "pebble"
	BackendBadger Backend = "badger"
)

// Column families known to this tool. The raw keyspace is partitioned by
// prefixing every key with the column family name and a '/' separator.
const (
	CFMerkleRecords = "merkle_records"
	CFDataRecords   = "data_records"

	// DefaultColumnFamily is used when the caller does not name one.
	DefaultColumnFamily = CFMerkleRecords
)

// Options configures a read-only store open.
type Options struct {
	// Backend selects the storage engine. Empty means detect it from the
	// directory contents.
	Backend Backend

	// ColumnFamilies is the set of families the store is opened with.
	// Lookups against any other name fail with *ColumnFamilyError.
	// Empty means the tool's known families.
	ColumnFamilies []string
}

// Errors
var (
	ErrKeyNotFound = &StoreError{"key not found"}
)

// StoreError represents a store-level error with no underlying cause.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// ColumnFamilyError reports a column family the store was not opened with.
type ColumnFamilyError struct {
	Name string
}

func (e *ColumnFamilyError) Error() string {
	return fmt.Sprintf("column family not found: %s", e.Name)
}
