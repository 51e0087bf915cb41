/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/rockcheck/pkg/config"
	"github.com/ssargent/rockcheck/pkg/store"
)

// cfg holds the active configuration; defaults unless --config names a file.
var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rockcheck",
	Short: "Read-only inspector for column-family key-value stores",
	Long: `Rockcheck inspects an embedded key-value store without ever taking
write ownership of it: look up a single key supplied in one of several
textual encodings and print every candidate reading of its value, or count
the entries in a column family.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			return nil
		}
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a rockcheck config file")
	rootCmd.PersistentFlags().String("backend", "", "Storage engine (pebble or badger; default autodetect)")
}

// storeOptions resolves the open options from the flags and the active
// configuration. The --backend flag wins over the config file.
func storeOptions(cmd *cobra.Command) store.Options {
	backend, _ := cmd.Flags().GetString("backend")
	if backend == "" {
		backend = cfg.Backend
	}
	return store.Options{
		Backend:        store.Backend(backend),
		ColumnFamilies: cfg.ColumnFamilies,
	}
}

// columnFamily resolves the column family from the flag, falling back to the
// configured default.
func columnFamily(cmd *cobra.Command) string {
	cf, _ := cmd.Flags().GetString("cf")
	if cf == "" {
		cf = cfg.DefaultFamily
	}
	return cf
}
