// Init command: prepares directories, configuration, schema, and the
// default categories without starting the server.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xenomorphXX121/NoteVault/internal/sqlite"
	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the note store",
	Long: `Init creates the configuration and data directories, writes a default
config.yaml if none exists, initializes the database schema, and seeds
the default categories if the store is empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and default config.yaml were created by
		// PersistentPreRunE; only the store is left.
		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		store := sqlite.NewStore(newLogger())
		if err := store.Open(types.Config{DataDir: dataDir}); err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		if err := store.Close(); err != nil {
			return err
		}

		fmt.Printf("Initialized note store in %s\n", dataDir)
		return nil
	},
}
