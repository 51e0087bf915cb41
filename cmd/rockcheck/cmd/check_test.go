package cmd

import (
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/rockcheck/pkg/records"
	"github.com/ssargent/rockcheck/pkg/store"
)

// seedStore writes a small pebble fixture the commands can be run against.
func seedStore(t *testing.T) string {
	t.Helper()
	path := t.TempDir()

	db, err := pebble.Open(path, &pebble.Options{})
	require.NoError(t, err)

	record := records.MerkleRecord{DataHash: [records.HashSize]byte{0x42}}
	require.NoError(t, db.Set(
		store.CFKey(store.CFMerkleRecords, []byte{0x0A, 0x1B, 0x2C}),
		record.Encode(), pebble.Sync))
	require.NoError(t, db.Set(
		store.CFKey(store.CFDataRecords, []byte("d1")),
		[]byte("payload meta"), pebble.Sync))
	require.NoError(t, db.Close())

	return path
}

func runCommand(args ...string) error {
	// Flag values persist across Execute calls; clear the optional ones so
	// each case starts from the defaults.
	_ = checkCmd.Flags().Set("cf", "")
	_ = countCmd.Flags().Set("cf", "")
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheckCommand(t *testing.T) {
	path := seedStore(t)

	t.Run("existing key", func(t *testing.T) {
		err := runCommand("check", "--db-path", path, "--key", "0x0A1B2C")
		assert.NoError(t, err)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		err := runCommand("check", "--db-path", path, "--key", "FFFF")
		assert.NoError(t, err)
	})

	t.Run("array key", func(t *testing.T) {
		err := runCommand("check", "--db-path", path, "--key", "[10,27,44]")
		assert.NoError(t, err)
	})

	t.Run("unparseable key", func(t *testing.T) {
		err := runCommand("check", "--db-path", path, "--key", "zzz")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parsing key")
	})

	t.Run("unknown column family", func(t *testing.T) {
		err := runCommand("check", "--db-path", path, "--key", "00", "--cf", "no_such_family")
		assert.Error(t, err)
	})

	t.Run("missing store path", func(t *testing.T) {
		err := runCommand("check", "--db-path", "/no/such/store", "--key", "00")
		assert.Error(t, err)
	})
}

func TestCountCommand(t *testing.T) {
	path := seedStore(t)

	t.Run("known family", func(t *testing.T) {
		err := runCommand("count", "--db-path", path, "--cf", "data_records")
		assert.NoError(t, err)
	})

	t.Run("default family", func(t *testing.T) {
		err := runCommand("count", "--db-path", path)
		assert.NoError(t, err)
	})

	t.Run("unknown family", func(t *testing.T) {
		err := runCommand("count", "--db-path", path, "--cf", "no_such_family")
		assert.Error(t, err)
	})
}

func TestColumnFamilyDefault(t *testing.T) {
	assert.Equal(t, store.CFMerkleRecords, cfg.DefaultFamily)
}
