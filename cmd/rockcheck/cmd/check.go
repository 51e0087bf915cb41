package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ssargent/rockcheck/pkg/decode"
	"github.com/ssargent/rockcheck/pkg/keycodec"
	"github.com/ssargent/rockcheck/pkg/store"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Look up a key and print every candidate reading of its value",
	Long: `Check looks up a single key in one column family and prints the raw
value alongside every interpretation the decoder supports.

The key may be a hex string ("0A1B2C" or "0x0A1B2C"), an array of bytes
("[10,27,44]"), or exactly four 64-bit words ("[1,2,3,4]" or
"[1_u64,2_u64,3_u64,4_u64]").

Example:
  rockcheck check --db-path ./prover-db --cf merkle_records --key 0x0A1B2C`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db-path")
		keyStr, _ := cmd.Flags().GetString("key")
		cfName := columnFamily(cmd)

		key, err := keycodec.Parse(keyStr)
		if err != nil {
			return errors.Wrap(err, "parsing key")
		}
		for _, note := range key.Notes {
			fmt.Println(note)
		}

		fmt.Printf("Checking store at path: %s\n", dbPath)
		fmt.Printf("Using column family: %s\n", cfName)
		fmt.Printf("Looking for key (bytes): %v\n", key.Bytes)

		s, err := store.Open(dbPath, storeOptions(cmd))
		if err != nil {
			return err
		}
		defer s.Close()

		value, err := s.Get(cfName, key.Bytes)
		if errors.Is(err, store.ErrKeyNotFound) {
			fmt.Println("Key not found in the store")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println("Key found!")
		fmt.Print(decode.Decode(value, cfName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("db-path", "d", "", "Path to the store directory")
	checkCmd.Flags().StringP("cf", "c", "", "Column family name (default merkle_records)")
	checkCmd.Flags().StringP("key", "k", "", "Key to look up (hex or array format)")
	checkCmd.MarkFlagRequired("db-path")
	checkCmd.MarkFlagRequired("key")
}
