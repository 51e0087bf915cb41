package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/rockcheck/pkg/store"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count every entry in a column family",
	Long: `Count opens the store read-only and walks one column family from its
first entry to its last, counting records. An empty column family counts as
zero.

Example:
  rockcheck count --db-path ./prover-db --cf data_records`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db-path")
		cfName := columnFamily(cmd)

		s, err := store.Open(dbPath, storeOptions(cmd))
		if err != nil {
			return err
		}
		defer s.Close()

		count, err := s.Count(cfName)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d entries\n", cfName, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().StringP("db-path", "d", "", "Path to the store directory")
	countCmd.Flags().StringP("cf", "c", "", "Column family name (default merkle_records)")
	countCmd.MarkFlagRequired("db-path")
}
