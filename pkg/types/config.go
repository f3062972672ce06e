package types

// Config holds the parameters for opening a store.
type Config struct {
	// DataDir is the directory holding the database file. Created on
	// open if it does not exist.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
