// Package config loads the notevault config.yaml using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	KeyListenAddr = "listen_addr"
	KeyDataDir    = "data_dir"
	KeyLogLevel   = "log_level"

	// Defaults.
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# NoteVault configuration

# Address the HTTP server listens on
listen_addr: ":8080"

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Log level: trace, debug, info, warn, error
log_level: info
`

// Load reads config.yaml from the given config directory. It creates
// the directory and a commented default config.yaml on first run. A
// missing config.yaml is not an error; defaults apply.
func Load(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyListenAddr, DefaultListenAddr)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
