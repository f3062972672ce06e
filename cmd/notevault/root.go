// Root command for the notevault CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xenomorphXX121/NoteVault/internal/config"
	"github.com/xenomorphXX121/NoteVault/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagAddr      string
	flagLogLevel  string
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them. Flags take precedence.
var (
	configDataDir  string
	configAddr     string
	configLogLevel string
)

var rootCmd = &cobra.Command{
	Use:     "notevault",
	Short:   "NoteVault is a category-organized note-taking service",
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := config.Load(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(config.KeyDataDir)
		configAddr = cfg.GetString(config.KeyListenAddr)
		configLogLevel = cfg.GetString(config.KeyLogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.notevault-db)")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "HTTP listen address (default: :8080)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > NOTEVAULT_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > NOTEVAULT_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveAddr returns the HTTP listen address: flag > config > default.
func resolveAddr() string {
	if flagAddr != "" {
		return flagAddr
	}
	if configAddr != "" {
		return configAddr
	}
	return config.DefaultListenAddr
}

// newLogger builds the process logger at the resolved level.
func newLogger() zerolog.Logger {
	level := flagLogLevel
	if level == "" {
		level = configLogLevel
	}
	if level == "" {
		level = config.DefaultLogLevel
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).Level(parsed).With().Timestamp().Logger()
}
